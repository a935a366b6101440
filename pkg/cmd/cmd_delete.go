// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// NewDeleteCmd new a Command for `pms deletefrompms`.
func NewDeleteCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "deletefrompms",
		Usage:     "delete a published module or one of its versions from the registry",
		ArgsUsage: "<module>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  FLAG_VERSION,
				Usage: "the single version to delete, every version is deleted when omitted",
			},
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
					"usage: pms deletefrompms <module> [--version <version>]",
				)
			}
			if c.Bool(FLAG_YES) {
				pmscli.SetConfirm(func(msg string) bool { return true })
			}

			err := pmscli.Delete(
				client.WithDeleteModule(c.Args().First()),
				client.WithDeleteVersion(c.String(FLAG_VERSION)),
			)
			return asCliError(pmscli, err)
		},
	}
}
