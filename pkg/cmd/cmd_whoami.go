// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
)

// NewWhoamiCmd new a Command for `pms whoami`.
func NewWhoamiCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden: false,
		Name:   "whoami",
		Usage:  "show the currently logged in user",
		Action: func(c *cli.Context) error {
			_, err := pmscli.Whoami()
			return err
		},
	}
}
