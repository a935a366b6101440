package client

import (
	"fmt"
	"os"

	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/utils"
)

// RemoveOptions contains the options for removing a module from a project.
type RemoveOptions struct {
	// ModuleName is the name of the module to remove.
	ModuleName string
	// ProjectDir is the path of the initialized project.
	ProjectDir string
}

type RemoveOption func(*RemoveOptions) error

// WithRemoveModule sets the module to remove.
func WithRemoveModule(moduleName string) RemoveOption {
	return func(opts *RemoveOptions) error {
		opts.ModuleName = moduleName
		return nil
	}
}

// WithRemoveProjectDir sets the project directory to remove from.
func WithRemoveProjectDir(projectDir string) RemoveOption {
	return func(opts *RemoveOptions) error {
		opts.ProjectDir = projectDir
		return nil
	}
}

// Remove deletes a module directory from the project and drops its
// manifest entry.
func (c *PmsClient) Remove(options ...RemoveOption) error {
	opts := &RemoveOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return err
		}
	}

	if opts.ModuleName == "" {
		return errors.MissingModuleName
	}
	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}

	moduleDir := project.ModuleDir(opts.ProjectDir, opts.ModuleName)
	if !utils.DirExists(moduleDir) {
		return reporter.NewErrorEvent(
			reporter.FailedRemove,
			errors.NotFound,
			fmt.Sprintf("module '%s' not found in project", opts.ModuleName),
		)
	}

	if !c.confirm(fmt.Sprintf("Remove module '%s' from project?", opts.ModuleName)) {
		return errors.UserDeclined
	}

	if err := os.RemoveAll(moduleDir); err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedRemove,
			err,
			fmt.Sprintf("failed to remove module '%s'", opts.ModuleName),
		)
	}

	manifest, err := project.LoadManifest(opts.ProjectDir)
	if err != nil {
		return err
	}
	manifest.RemoveModule(opts.ModuleName)
	if err := manifest.Save(opts.ProjectDir); err != nil {
		return err
	}

	reporter.ReportMsgTo(fmt.Sprintf("module '%s' removed", opts.ModuleName), c.logWriter)
	return nil
}
