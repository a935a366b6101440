// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/reporter"
)

// NewUploadCmd new a Command for `pms upload`.
func NewUploadCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "upload",
		Usage:     "upload a module archive to the pms registry",
		ArgsUsage: "<module_name> <version> <zip_file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FLAG_YES,
				Aliases: []string{"y"},
				Usage:   "skip the confirmation prompt",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return reporter.NewErrorEvent(
					reporter.InvalidCmd,
					fmt.Errorf("usage: pms upload <module_name> <version> <zip_file>"),
				)
			}
			if c.Bool(FLAG_YES) {
				pmscli.SetConfirm(func(msg string) bool { return true })
			}

			err := pmscli.Upload(
				client.WithUploadModule(c.Args().Get(0), c.Args().Get(1)),
				client.WithUploadZipPath(c.Args().Get(2)),
			)
			return asCliError(pmscli, err)
		},
	}
}
