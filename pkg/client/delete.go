package client

import (
	"fmt"

	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// DeleteOptions contains the options for deleting a published module.
type DeleteOptions struct {
	// ModuleName is the name of the module to delete.
	ModuleName string
	// Version is the version to delete, empty means every version.
	Version string
}

type DeleteOption func(*DeleteOptions) error

// WithDeleteModule sets the module to delete.
func WithDeleteModule(moduleName string) DeleteOption {
	return func(opts *DeleteOptions) error {
		opts.ModuleName = moduleName
		return nil
	}
}

// WithDeleteVersion sets the single version to delete.
func WithDeleteVersion(version string) DeleteOption {
	return func(opts *DeleteOptions) error {
		opts.Version = version
		return nil
	}
}

// Delete removes a version of a module, or the whole module when no
// version is set, from the registry. Requires a live session.
func (c *PmsClient) Delete(options ...DeleteOption) error {
	opts := &DeleteOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return err
		}
	}

	if opts.ModuleName == "" {
		return errors.MissingModuleName
	}

	record, err := c.EnsureSession()
	if err != nil {
		return err
	}

	var target string
	if opts.Version != "" {
		target = fmt.Sprintf("%s@%s", opts.ModuleName, opts.Version)
	} else {
		target = fmt.Sprintf("all versions of '%s'", opts.ModuleName)
	}
	if !c.confirm(fmt.Sprintf("Delete %s from the registry?", target)) {
		return errors.UserDeclined
	}

	msg, err := c.registry.Delete(record.Token, opts.ModuleName, opts.Version)
	if err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedDelete,
			err,
			fmt.Sprintf("failed to delete '%s'", opts.ModuleName),
		)
	}

	if msg == "" {
		msg = fmt.Sprintf("deleted '%s'", opts.ModuleName)
	}
	reporter.ReportMsgTo(msg, c.logWriter)
	return nil
}
