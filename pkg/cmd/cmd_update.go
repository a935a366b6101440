// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/reporter"
)

// NewUpdateCmd new a Command for `pms updatemodules`.
func NewUpdateCmd(pmscli *client.PmsClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "updatemodules",
		Usage:     "update every installed module to the registry's latest version",
		ArgsUsage: "[project_dir]",
		Action: func(c *cli.Context) error {
			projectDir := c.Args().First()
			if projectDir == "" {
				projectDir = "."
			}

			results, err := pmscli.UpdateAll(
				client.WithUpdateProjectDir(projectDir),
			)
			if err != nil {
				return err
			}

			updated, skipped, failed := 0, 0, 0
			for _, result := range results {
				switch result.Outcome {
				case client.UpdateOutcomeUpdated:
					updated++
				case client.UpdateOutcomeSkipped:
					skipped++
				case client.UpdateOutcomeFailed:
					failed++
				}
			}
			reporter.ReportMsgTo(
				fmt.Sprintf("%d updated, %d up to date, %d failed", updated, skipped, failed),
				pmscli.GetLogWriter(),
			)
			return nil
		},
	}
}
