package client

import (
	"fmt"

	"packmyseal.io/pms/pkg/credentials"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// Register creates a new account on the registry.
func (c *PmsClient) Register(username, password string) error {
	if err := c.registry.Register(username, password); err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedRegister,
			err,
			fmt.Sprintf("failed to register '%s'", username),
		)
	}

	reporter.ReportMsgTo("Account created successfully!", c.logWriter)
	reporter.ReportMsgTo(fmt.Sprintf("Now log in with:  pms login %s <password>", username), c.logWriter)
	return nil
}

// Login exchanges the username and password for tokens and saves the
// credential record.
func (c *PmsClient) Login(username, password string) error {
	token, refreshToken, err := c.registry.Login(username, password)
	if err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedLogin,
			err,
			fmt.Sprintf("failed to login '%s', please check username and password is valid", username),
		)
	}
	if token == "" {
		return reporter.NewErrorEvent(
			reporter.FailedLogin,
			errors.RefreshProtocolError,
			"login succeeded but no token was received",
		)
	}

	record := &credentials.Record{
		Username:     username,
		Token:        token,
		RefreshToken: refreshToken,
	}
	if err := c.creds.Save(record); err != nil {
		return reporter.NewErrorEvent(
			reporter.FailedSaveCredential,
			err,
			"failed to save the credentials",
		)
	}

	reporter.ReportMsgTo("Login Succeeded", c.logWriter)
	return nil
}
