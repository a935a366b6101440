// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	goerrors "errors"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// asCliError downgrades a declined confirmation to a clean exit, every
// other error propagates and fails the process.
func asCliError(pmscli *client.PmsClient, err error) error {
	if goerrors.Is(err, errors.UserDeclined) {
		reporter.ReportMsgTo("cancelled.", pmscli.GetLogWriter())
		return nil
	}
	return err
}
