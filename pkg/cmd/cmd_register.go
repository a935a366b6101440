// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/reporter"
)

// NewRegisterCmd new a Command for `pms register`.
func NewRegisterCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "register",
		Usage:     "create a new pms account",
		ArgsUsage: "<username> <password>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					fmt.Errorf("usage: pms register <username> <password>"),
				)
			}
			return pmscli.Register(c.Args().Get(0), c.Args().Get(1))
		},
	}
}
