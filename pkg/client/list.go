package client

import (
	"fmt"

	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// ListVersions prints the published versions of a module in the order
// the registry reports them.
func (c *PmsClient) ListVersions(moduleName string) error {
	if moduleName == "" {
		return errors.MissingModuleName
	}

	versions, err := c.registry.ListVersions(moduleName)
	if err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedGetVersions,
			err,
			fmt.Sprintf("failed to fetch versions for '%s'", moduleName),
		)
	}

	reporter.ReportMsgTo(fmt.Sprintf("Available versions for '%s':", moduleName), c.logWriter)
	for _, version := range versions {
		reporter.ReportMsgTo(fmt.Sprintf("  • %s", version), c.logWriter)
	}
	return nil
}
