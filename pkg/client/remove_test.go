package client

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	pmserr "packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/utils"
)

func TestRemoveModule(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, map[string]string{"leftpad": "1.0.0"})

	err := pmscli.Remove(
		WithRemoveModule("leftpad"),
		WithRemoveProjectDir(projectDir),
	)
	assert.NilError(t, err)

	assert.Assert(t, !utils.DirExists(project.ModuleDir(projectDir, "leftpad")))

	manifest, err := project.LoadManifest(projectDir)
	assert.NilError(t, err)
	_, ok := manifest.Version("leftpad")
	assert.Assert(t, !ok)
}

func TestRemoveModuleNotFound(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, nil)

	err := pmscli.Remove(
		WithRemoveModule("ghost"),
		WithRemoveProjectDir(projectDir),
	)
	assert.Assert(t, errors.Is(err, pmserr.NotFound))
}

func TestRemoveDeclined(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	pmscli, _ := newTestClient(t, reg)
	projectDir := newTestProject(t, map[string]string{"leftpad": "1.0.0"})

	pmscli.SetConfirm(func(msg string) bool { return false })
	err := pmscli.Remove(
		WithRemoveModule("leftpad"),
		WithRemoveProjectDir(projectDir),
	)
	assert.Assert(t, errors.Is(err, pmserr.UserDeclined))
	assert.Assert(t, utils.DirExists(project.ModuleDir(projectDir, "leftpad")))
}
