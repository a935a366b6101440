// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// NewInstallCmd new a Command for `pms install`.
func NewInstallCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "install",
		Usage:     "install a module, the latest version if none is specified",
		ArgsUsage: "<module>[@version] [project_dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FLAG_YES,
				Aliases: []string{"y"},
				Usage:   "skip the confirmation prompt",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					errors.MissingModuleName,
					"usage: pms install <module>[@version] [project_dir]",
				)
			}
			if c.Bool(FLAG_YES) {
				pmscli.SetConfirm(func(msg string) bool { return true })
			}

			projectDir := c.Args().Get(1)
			if projectDir == "" {
				projectDir = "."
			}

			_, err := pmscli.Install(
				client.WithInstallModule(c.Args().First()),
				client.WithInstallProjectDir(projectDir),
			)
			return asCliError(pmscli, err)
		},
	}
}
