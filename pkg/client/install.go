package client

import (
	"fmt"
	"os"
	"strings"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/utils"
)

// InstallOptions contains the options for installing a module.
type InstallOptions struct {
	// ModuleName is the name of the module to install.
	ModuleName string
	// Version is the requested version, the latest sentinel means
	// "resolve to whatever the registry currently considers newest".
	Version string
	// ProjectDir is the path of the initialized project.
	ProjectDir string
}

type InstallOption func(*InstallOptions) error

// WithInstallModule sets the module to install from a 'name' or
// 'name@version' reference.
func WithInstallModule(moduleRef string) InstallOption {
	return func(opts *InstallOptions) error {
		name, version, found := strings.Cut(moduleRef, "@")
		opts.ModuleName = name
		if found {
			opts.Version = version
		} else {
			opts.Version = constants.LatestVersion
		}
		return nil
	}
}

// WithInstallProjectDir sets the project directory to install into.
func WithInstallProjectDir(projectDir string) InstallOption {
	return func(opts *InstallOptions) error {
		opts.ProjectDir = projectDir
		return nil
	}
}

// Install resolves, downloads and extracts a module into the project
// and records the resolved version in the manifest. Returns the
// resolved version. The manifest write is the last action, a failed
// install leaves the manifest unmodified.
func (c *PmsClient) Install(options ...InstallOption) (string, error) {
	opts := &InstallOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return "", err
		}
	}

	if opts.ModuleName == "" {
		return "", errors.MissingModuleName
	}
	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}
	if opts.Version == "" {
		opts.Version = constants.LatestVersion
	}

	manifest, err := project.LoadManifest(opts.ProjectDir)
	if err != nil {
		return "", err
	}

	// Resolve the latest sentinel exactly once, the resolved version is
	// used for both the download request and the manifest write.
	resolvedVersion := opts.Version
	if resolvedVersion == constants.LatestVersion {
		resolvedVersion, err = c.registry.LatestVersion(opts.ModuleName)
		if err != nil {
			return "", reporter.NewErrorEvent(
				reporter.FailedResolveLatest,
				fmt.Errorf("%w: %s", errors.ResolutionFailed, err),
				fmt.Sprintf("failed to resolve the latest version of '%s'", opts.ModuleName),
			)
		}
		reporter.ReportMsgTo(
			fmt.Sprintf("the latest version '%s' will be installed", resolvedVersion),
			c.logWriter,
		)
	}

	if !c.confirm(fmt.Sprintf("Install '%s@%s'?", opts.ModuleName, resolvedVersion)) {
		return "", errors.UserDeclined
	}

	reporter.ReportMsgTo(
		fmt.Sprintf("downloading '%s@%s' from '%s'", opts.ModuleName, resolvedVersion, c.registry.BaseURL()),
		c.logWriter,
	)

	tmpPath, err := c.registry.WriteToTempFile(opts.ModuleName, resolvedVersion)
	if err != nil {
		return "", reporter.NewErrorEvent(
			reporter.FailedDownload,
			fmt.Errorf("%w: %s", errors.FailedDownloadError, err),
			fmt.Sprintf("failed to download '%s@%s'", opts.ModuleName, resolvedVersion),
		)
	}
	defer os.Remove(tmpPath)

	moduleDir := project.ModuleDir(opts.ProjectDir, opts.ModuleName)
	if err := utils.ExtractZip(tmpPath, moduleDir); err != nil {
		return "", reporter.NewErrorEvent(
			reporter.FailedExtract,
			err,
			fmt.Sprintf("failed to extract '%s@%s'", opts.ModuleName, resolvedVersion),
		)
	}

	manifest.SetModule(opts.ModuleName, resolvedVersion)
	if err := manifest.Save(opts.ProjectDir); err != nil {
		return "", reporter.NewErrorEvent(
			reporter.FailedSaveManifest,
			err,
			fmt.Sprintf("failed to record '%s@%s' in the project manifest", opts.ModuleName, resolvedVersion),
		)
	}

	reporter.ReportMsgTo(
		fmt.Sprintf("successfully installed '%s@%s'", opts.ModuleName, resolvedVersion),
		c.logWriter,
	)
	return resolvedVersion, nil
}
