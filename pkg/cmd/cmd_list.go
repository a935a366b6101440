// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// NewListCmd new a Command for `pms list`.
func NewListCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "list",
		Usage:     "show available versions of a module",
		ArgsUsage: "<module>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					errors.MissingModuleName,
					"usage: pms list <module>",
				)
			}
			return pmscli.ListVersions(c.Args().First())
		},
	}
}
