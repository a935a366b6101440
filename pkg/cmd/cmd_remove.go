// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// NewRemoveCmd new a Command for `pms remove`.
func NewRemoveCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "remove",
		Usage:     "remove a module from the project",
		ArgsUsage: "<module> [project_dir]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					errors.MissingModuleName,
					"usage: pms remove <module> [project_dir]",
				)
			}

			projectDir := c.Args().Get(1)
			if projectDir == "" {
				projectDir = "."
			}

			err := pmscli.Remove(
				client.WithRemoveModule(c.Args().First()),
				client.WithRemoveProjectDir(projectDir),
			)
			return asCliError(pmscli, err)
		},
	}
}
