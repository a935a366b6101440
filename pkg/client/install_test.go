package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	pmserr "packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/utils"
)

func TestInstallExplicitVersion(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	reg.addModule(t, "leftpad", "1.2.3", "new content")

	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	version, err := pmscli.Install(
		WithInstallModule("leftpad@1.2.3"),
		WithInstallProjectDir(projectDir),
	)
	assert.NilError(t, err)
	assert.Equal(t, version, "1.2.3")

	// an explicit version never touches the latest-version lookup
	assert.Equal(t, reg.latestCalls, 0)
	assert.Equal(t, reg.downloadCalls, 1)

	content, err := os.ReadFile(filepath.Join(project.ModuleDir(projectDir, "leftpad"), "mod.tfs"))
	assert.NilError(t, err)
	assert.Equal(t, string(content), "new content")

	manifest, err := project.LoadManifest(projectDir)
	assert.NilError(t, err)
	installed, ok := manifest.Version("leftpad")
	assert.Assert(t, ok)
	assert.Equal(t, installed, "1.2.3")
}

func TestInstallLatestResolvesOnce(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	reg.addModule(t, "leftpad", "2.0.0", "new content")

	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	version, err := pmscli.Install(
		WithInstallModule("leftpad"),
		WithInstallProjectDir(projectDir),
	)
	assert.NilError(t, err)
	assert.Equal(t, version, "2.0.0")

	// resolved exactly once, and the resolution is used for both the
	// download request and the manifest write
	assert.Equal(t, reg.latestCalls, 1)

	manifest, err := project.LoadManifest(projectDir)
	assert.NilError(t, err)
	installed, _ := manifest.Version("leftpad")
	assert.Equal(t, installed, "2.0.0")
}

func TestInstallMissingModuleName(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()

	pmscli, _ := newTestClient(t, reg)

	_, err := pmscli.Install(WithInstallProjectDir(newTestProject(t, nil)))
	assert.Assert(t, errors.Is(err, pmserr.MissingModuleName))
}

func TestInstallResolutionFailed(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()

	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	_, err := pmscli.Install(
		WithInstallModule("ghost"),
		WithInstallProjectDir(projectDir),
	)
	assert.Assert(t, errors.Is(err, pmserr.ResolutionFailed))
	assert.Equal(t, reg.downloadCalls, 0)
}

func TestInstallDeclinedLeavesProjectUntouched(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	reg.addModule(t, "leftpad", "1.0.0", "new content")

	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	before, err := os.ReadFile(project.ManifestPath(projectDir))
	assert.NilError(t, err)

	pmscli.SetConfirm(func(msg string) bool {
		assert.Equal(t, msg, "Install 'leftpad@1.0.0'?")
		return false
	})

	_, err = pmscli.Install(
		WithInstallModule("leftpad"),
		WithInstallProjectDir(projectDir),
	)
	assert.Assert(t, errors.Is(err, pmserr.UserDeclined))

	// declining downloads nothing and leaves the manifest byte-identical
	assert.Equal(t, reg.downloadCalls, 0)
	after, err := os.ReadFile(project.ManifestPath(projectDir))
	assert.NilError(t, err)
	assert.DeepEqual(t, before, after)
	assert.Assert(t, !utils.DirExists(project.ModuleDir(projectDir, "leftpad")))
}

func TestInstallDownloadFailureLeavesManifestUnmodified(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	// latest resolves but no archive is published, the download 404s
	reg.mu.Lock()
	reg.latest["leftpad"] = "1.0.0"
	reg.mu.Unlock()

	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	before, err := os.ReadFile(project.ManifestPath(projectDir))
	assert.NilError(t, err)

	_, err = pmscli.Install(
		WithInstallModule("leftpad"),
		WithInstallProjectDir(projectDir),
	)
	assert.Assert(t, errors.Is(err, pmserr.FailedDownloadError))

	after, err := os.ReadFile(project.ManifestPath(projectDir))
	assert.NilError(t, err)
	assert.DeepEqual(t, before, after)
}

func TestInstallUninitializedProject(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	reg.addModule(t, "leftpad", "1.0.0", "content")

	pmscli, _ := newTestClient(t, reg)

	_, err := pmscli.Install(
		WithInstallModule("leftpad@1.0.0"),
		WithInstallProjectDir(t.TempDir()),
	)
	assert.Assert(t, errors.Is(err, pmserr.ProjectNotInitialized))
}
