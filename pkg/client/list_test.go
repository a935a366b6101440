package client

import (
	"testing"

	"gotest.tools/v3/assert"
	"packmyseal.io/pms/pkg/utils"
)

func TestListVersions(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	reg.addModule(t, "leftpad", "1.0.0", "v1")
	reg.addModule(t, "leftpad", "2.0.0", "v2")

	pmscli, buf := newTestClient(t, reg)

	assert.NilError(t, pmscli.ListVersions("leftpad"))
	assert.Equal(t, utils.RmNewline(buf.String()),
		"Available versions for 'leftpad':  • 1.0.0  • 2.0.0")
}

func TestListVersionsMissingName(t *testing.T) {
	reg := newMockRegistry()
	defer reg.close()
	pmscli, _ := newTestClient(t, reg)

	assert.Assert(t, pmscli.ListVersions("") != nil)
}
