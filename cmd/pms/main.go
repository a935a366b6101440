// Copyright 2024 The PackMySeal Authors. All rights reserved.

package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"packmyseal.io/pms/pkg/client"
	"packmyseal.io/pms/pkg/cmd"
	"packmyseal.io/pms/pkg/reporter"
	"packmyseal.io/pms/pkg/version"
)

func main() {
	reporter.InitReporter()

	pmscli, err := client.NewPmsClient()
	if err != nil {
		reporter.Fatal(err)
	}

	app := cli.NewApp()
	app.Name = "pms"
	app.Usage = "pms is the package manager for TuffSeal"
	app.Version = version.GetVersionInStr()
	app.UsageText = "pms <command> [arguments]..."
	app.Commands = []*cli.Command{
		cmd.NewInitCmd(pmscli),
		cmd.NewInstallCmd(pmscli),
		cmd.NewRemoveCmd(pmscli),
		cmd.NewListCmd(pmscli),
		cmd.NewRegisterCmd(pmscli),
		cmd.NewLoginCmd(pmscli),
		cmd.NewLogoutCmd(pmscli),
		cmd.NewWhoamiCmd(pmscli),
		cmd.NewUploadCmd(pmscli),
		cmd.NewUpdateCmd(pmscli),
		cmd.NewDeleteCmd(pmscli),
	}
	if err := app.Run(os.Args); err != nil {
		reporter.Fatal(err)
	}
}
