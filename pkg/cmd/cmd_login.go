// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/reporter"
)

// NewLoginCmd new a Command for `pms login`.
func NewLoginCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "login",
		Usage:     "log in and save credentials",
		ArgsUsage: "<username> <password>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					fmt.Errorf("usage: pms login <username> <password>"),
				)
			}
			return pmscli.Login(c.Args().Get(0), c.Args().Get(1))
		},
	}
}
