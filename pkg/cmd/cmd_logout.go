// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
)

// NewLogoutCmd new a Command for `pms logout`.
func NewLogoutCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden: false,
		Name:   "logout",
		Usage:  "log out and clear saved credentials",
		Action: func(c *cli.Context) error {
			return asCliError(pmscli, pmscli.Logout())
		},
	}
}
