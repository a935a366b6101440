// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// NewInitCmd new a Command for `pms init`.
func NewInitCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "init",
		Usage:     "initialize a new TuffSeal project",
		ArgsUsage: "<project_name>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					errors.InvalidInitOptions,
					"usage: pms init <project_name>",
				)
			}
			return pmscli.Init(
				client.WithInitName(c.Args().First()),
			)
		},
	}
}
