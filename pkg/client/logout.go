package client

import (
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// Logout clears the saved credential record after confirmation.
func (c *PmsClient) Logout() error {
	if !c.confirm("Log out?") {
		return errors.UserDeclined
	}

	if err := c.creds.Clear(); err != nil {
		return reporter.NewErrorEvent(reporter.FailedLogout, err, "failed to clear the credentials")
	}

	reporter.ReportMsgTo("Logged out.", c.logWriter)
	return nil
}
