package main

import (
	cdkgenesis "github.com/0xPolygon/cdk-genesis"
	"github.com/urfave/cli/v2"
)

func versionCmd(cliCtx *cli.Context) error {
	cdkgenesis.PrintVersion(cliCtx.App.Writer)
	return nil
}
