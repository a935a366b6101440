package client

import (
	"fmt"
	"os"

	"github.com/otiai10/copy"

	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/utils"
)

// UpdateOutcome is the per-module result kind of UpdateAll.
type UpdateOutcome string

const (
	// UpdateOutcomeUpdated means a newer version was installed.
	UpdateOutcomeUpdated UpdateOutcome = "updated"
	// UpdateOutcomeSkipped means the installed version is the latest.
	UpdateOutcomeSkipped UpdateOutcome = "skipped"
	// UpdateOutcomeFailed means this module failed, the batch went on.
	UpdateOutcomeFailed UpdateOutcome = "failed"
)

// UpdateResult reports what happened to one module during UpdateAll.
type UpdateResult struct {
	Module  string
	From    string
	To      string
	Outcome UpdateOutcome
	Err     error
}

// UpdateOptions contains the options for updating the modules of a project.
type UpdateOptions struct {
	// ProjectDir is the path of the initialized project.
	ProjectDir string
}

type UpdateOption func(*UpdateOptions) error

// WithUpdateProjectDir sets the project directory to update.
func WithUpdateProjectDir(projectDir string) UpdateOption {
	return func(opts *UpdateOptions) error {
		opts.ProjectDir = projectDir
		return nil
	}
}

// UpdateAll walks every module recorded in the manifest, compares the
// installed version against the registry's latest by exact string
// equality and reinstalls the stale ones. A single module's failure is
// reported and never aborts the batch. Returns one result per module in
// manifest order.
func (c *PmsClient) UpdateAll(options ...UpdateOption) ([]UpdateResult, error) {
	opts := &UpdateOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return nil, err
		}
	}
	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}

	manifest, err := project.LoadManifest(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	results := make([]UpdateResult, 0, len(manifest.ModuleNames()))
	for _, moduleName := range manifest.ModuleNames() {
		installed, _ := manifest.Version(moduleName)
		result := c.updateModule(manifest, opts.ProjectDir, moduleName, installed)
		if result.Err != nil {
			reporter.ReportMsgTo(
				fmt.Sprintf("warning: failed to update '%s': %s", moduleName, result.Err),
				c.logWriter,
			)
		}
		results = append(results, result)
	}

	return results, nil
}

// updateModule performs the latest-version check and, when stale, the
// same download/extract/manifest sequence as Install for one module.
func (c *PmsClient) updateModule(manifest *project.Manifest, projectDir, moduleName, installed string) UpdateResult {
	result := UpdateResult{Module: moduleName, From: installed}

	latest, err := c.registry.LatestVersion(moduleName)
	if err != nil {
		result.Outcome = UpdateOutcomeFailed
		result.Err = fmt.Errorf("%w: %s", errors.ResolutionFailed, err)
		return result
	}
	result.To = latest

	// Staleness is exact string inequality, no version ordering is assumed.
	if latest == installed {
		result.Outcome = UpdateOutcomeSkipped
		reporter.ReportMsgTo(fmt.Sprintf("'%s@%s' is up to date", moduleName, installed), c.logWriter)
		return result
	}

	reporter.ReportMsgTo(
		fmt.Sprintf("updating '%s' from '%s' to '%s'", moduleName, installed, latest),
		c.logWriter,
	)

	moduleDir := project.ModuleDir(projectDir, moduleName)

	// Keep the old contents around so a failed download or extraction
	// does not leave the module missing.
	var backupDir string
	if utils.DirExists(moduleDir) {
		backupDir, err = os.MkdirTemp("", "pms-backup-")
		if err != nil {
			result.Outcome = UpdateOutcomeFailed
			result.Err = err
			return result
		}
		defer os.RemoveAll(backupDir)

		if err := copy.Copy(moduleDir, backupDir); err != nil {
			result.Outcome = UpdateOutcomeFailed
			result.Err = err
			return result
		}
		if err := os.RemoveAll(moduleDir); err != nil {
			result.Outcome = UpdateOutcomeFailed
			result.Err = err
			return result
		}
	}

	restore := func() {
		if backupDir != "" {
			os.RemoveAll(moduleDir)
			if err := copy.Copy(backupDir, moduleDir); err != nil {
				reporter.ReportMsgTo(
					fmt.Sprintf("warning: failed to restore '%s': %s", moduleName, err),
					c.logWriter,
				)
			}
		}
	}

	tmpPath, err := c.registry.WriteToTempFile(moduleName, latest)
	if err != nil {
		restore()
		result.Outcome = UpdateOutcomeFailed
		result.Err = fmt.Errorf("%w: %s", errors.FailedDownloadError, err)
		return result
	}
	defer os.Remove(tmpPath)

	if err := utils.ExtractZip(tmpPath, moduleDir); err != nil {
		restore()
		result.Outcome = UpdateOutcomeFailed
		result.Err = err
		return result
	}

	manifest.SetModule(moduleName, latest)
	if err := manifest.Save(projectDir); err != nil {
		result.Outcome = UpdateOutcomeFailed
		result.Err = err
		return result
	}

	result.Outcome = UpdateOutcomeUpdated
	reporter.ReportMsgTo(fmt.Sprintf("successfully updated '%s' to '%s'", moduleName, latest), c.logWriter)
	return result
}
