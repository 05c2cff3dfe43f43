package main

import (
	"github.com/0xPolygon/cdk-genesis/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	_, err := cliCtx.App.Writer.Write([]byte(config.DefaultVars + config.DefaultValues))
	return err
}
