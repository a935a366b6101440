package checker

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
	"golang.org/x/mod/module"

	"packmyseal.io/pms/pkg/errors"
)

// Checker defines an interface for checking a module reference before it
// is published.
type Checker interface {
	Check(module.Version) error
}

// ModChecker is responsible for running multiple checkers on a module
// reference.
type ModChecker struct {
	checkers []Checker
}

// ModCheckerOption configures how we set up ModChecker.
type ModCheckerOption func(*ModChecker)

// NewModChecker creates a new ModChecker with options.
func NewModChecker(options ...ModCheckerOption) *ModChecker {
	ModChecker := &ModChecker{}
	for _, opt := range options {
		opt(ModChecker)
	}
	return ModChecker
}

// WithChecker adds a single Checker to ModChecker.
func WithChecker(checker Checker) ModCheckerOption {
	return func(c *ModChecker) {
		if c.checkers == nil {
			c.checkers = []Checker{}
		}
		c.checkers = append(c.checkers, checker)
	}
}

// WithCheckers adds multiple Checkers to ModChecker.
func WithCheckers(checkers ...Checker) ModCheckerOption {
	return func(c *ModChecker) {
		if c.checkers == nil {
			c.checkers = []Checker{}
		}
		c.checkers = append(c.checkers, checkers...)
	}
}

func (mc *ModChecker) AddChecker(checker Checker) {
	mc.checkers = append(mc.checkers, checker)
}

func (mc *ModChecker) CheckersSize() int {
	if mc.checkers == nil {
		return 0
	}
	return len(mc.checkers)
}

// Check runs all individual checks for a module reference.
func (mc *ModChecker) Check(ref module.Version) error {
	for _, checker := range mc.checkers {
		if err := checker.Check(ref); err != nil {
			return err
		}
	}
	return nil
}

// IdentChecker validates the module name.
type IdentChecker struct{}

// NewIdentChecker creates a new IdentChecker.
func NewIdentChecker() *IdentChecker {
	return &IdentChecker{}
}

func (ic *IdentChecker) Check(ref module.Version) error {
	if !isValidModuleName(ref.Path) {
		return fmt.Errorf("%w (got '%s')", errors.InvalidUploadOptionsInvalidName, ref.Path)
	}
	return nil
}

// VersionChecker validates the module version.
type VersionChecker struct{}

// NewVersionChecker creates a new VersionChecker.
func NewVersionChecker() *VersionChecker {
	return &VersionChecker{}
}

func (vc *VersionChecker) Check(ref module.Version) error {
	if !isValidModuleVersion(ref.Version) {
		return fmt.Errorf("%w (got '%s' for %s)",
			errors.InvalidUploadOptionsInvalidVersion, ref.Version, ref.Path)
	}
	return nil
}

// isValidModuleName checks whether the given module name is valid.
func isValidModuleName(name string) bool {
	validNamePattern := `^[a-z][a-z0-9_]*(?:-[a-z0-9_]+)*$`
	regex := regexp.MustCompile(validNamePattern)
	return regex.MatchString(name)
}

// isValidModuleVersion checks whether the given version is a valid
// semantic version string.
func isValidModuleVersion(v string) bool {
	_, err := version.NewVersion(v)
	return err == nil
}
