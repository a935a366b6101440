package client

import (
	"packmyseal.io/pms/pkg/reporter"
)

// Whoami asks the registry for the name of the currently logged in user
// and prints it. Requires a live session.
func (c *PmsClient) Whoami() (string, error) {
	record, err := c.EnsureSession()
	if err != nil {
		return "", err
	}

	username, err := c.registry.Whoami(record.Token)
	if err != nil {
		return "", reporter.NewErrorEvent(reporter.FailedWhoami, err, "failed to get the current user")
	}

	reporter.ReportMsgTo(username, c.logWriter)
	return username, nil
}
