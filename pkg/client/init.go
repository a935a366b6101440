package client

import (
	"fmt"
	"os"
	"path/filepath"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/utils"
)

// The entry file written into a freshly initialized project.
const entryFileTemplate = `// main.tfs
fn main() {
    print("Hello, world!");
}
main();
`

// InitOptions contains the options for initializing a project.
type InitOptions struct {
	// Name is the project name, the project is created under './<name>'.
	Name string
	// WorkDir is the directory the project directory is created in.
	WorkDir string
}

type InitOption func(*InitOptions) error

// WithInitName sets the name of the project to initialize.
func WithInitName(name string) InitOption {
	return func(opts *InitOptions) error {
		opts.Name = name
		return nil
	}
}

// WithInitWorkDir sets the directory to create the project in.
func WithInitWorkDir(workDir string) InitOption {
	return func(opts *InitOptions) error {
		opts.WorkDir = workDir
		return nil
	}
}

// Init initializes a new project: the project directory, the module
// storage folder, an empty manifest and a hello-world entry file.
func (c *PmsClient) Init(options ...InitOption) error {
	opts := &InitOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return err
		}
	}

	if opts.Name == "" {
		return errors.InvalidInitOptions
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}

	projectDir := filepath.Join(opts.WorkDir, opts.Name)
	if err := os.MkdirAll(project.ModulesDir(projectDir), 0755); err != nil {
		return reporter.NewErrorEvent(reporter.FailedInit, err, "failed to initialize project")
	}

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return reporter.NewErrorEvent(reporter.FailedInit, err, "failed to initialize project")
	}

	manifest := project.NewManifest(filepath.Base(absDir))
	if err := manifest.Save(projectDir); err != nil {
		return reporter.NewErrorEvent(reporter.FailedInit, err, "failed to initialize project")
	}

	entryFile := filepath.Join(projectDir, constants.EntryFileName)
	if !utils.DirExists(entryFile) {
		if err := os.WriteFile(entryFile, []byte(entryFileTemplate), 0644); err != nil {
			return reporter.NewErrorEvent(reporter.FailedInit, err, "failed to initialize project")
		}
	}

	reporter.ReportMsgTo(fmt.Sprintf("New project initialized: %s", opts.Name), c.logWriter)
	return nil
}
