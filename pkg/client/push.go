package client

import (
	goerrors "errors"
	"fmt"

	"golang.org/x/mod/module"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/utils"
)

// UploadOptions contains the options for publishing a module archive.
type UploadOptions struct {
	// ModuleName is the name the module is published under.
	ModuleName string
	// Version is the version the archive is published as.
	Version string
	// ZipPath is the local path of the archive to publish.
	ZipPath string
}

type UploadOption func(*UploadOptions) error

// WithUploadModule sets the name and version to publish.
func WithUploadModule(name, version string) UploadOption {
	return func(opts *UploadOptions) error {
		opts.ModuleName = name
		opts.Version = version
		return nil
	}
}

// WithUploadZipPath sets the archive to publish.
func WithUploadZipPath(zipPath string) UploadOption {
	return func(opts *UploadOptions) error {
		opts.ZipPath = zipPath
		return nil
	}
}

// Upload publishes a module archive to the registry. The module name and
// version are validated before any network traffic, and the user confirms
// the upload. Requires a live session.
func (c *PmsClient) Upload(options ...UploadOption) error {
	opts := &UploadOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return err
		}
	}

	if err := c.ModChecker.Check(module.Version{Path: opts.ModuleName, Version: opts.Version}); err != nil {
		if goerrors.Is(err, errors.InvalidUploadOptionsInvalidVersion) {
			return reporter.NewErrorEvent(reporter.InvalidModuleVersion, err)
		}
		return reporter.NewErrorEvent(reporter.InvalidModuleName, err)
	}
	if !utils.DirExists(opts.ZipPath) {
		return reporter.NewErrorEvent(
			reporter.FailedUpload,
			errors.InvalidUploadOptionsMissingFile,
			fmt.Sprintf("file not found: %s", opts.ZipPath),
		)
	}

	record, err := c.EnsureSession()
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s@%s%s", opts.ModuleName, opts.Version, constants.ZipPathSuffix)
	if !c.confirm(fmt.Sprintf("Upload %s?", filename)) {
		return errors.UserDeclined
	}

	if err := c.registry.Upload(record.Token, opts.ModuleName, opts.Version, opts.ZipPath); err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedUpload,
			err,
			fmt.Sprintf("failed to upload '%s'", filename),
		)
	}

	reporter.ReportMsgTo(fmt.Sprintf("module %s uploaded successfully!", filename), c.logWriter)
	return nil
}
