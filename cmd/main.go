package main

import (
	"context"
	"os"
	"os/signal"

	cdkgenesis "github.com/0xPolygon/cdk-genesis"
	"github.com/0xPolygon/cdk-genesis/config"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/urfave/cli/v2"
)

const appName = "cdk-genesis"

func newApp() *cli.App {
	configFileFlag := &cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: false,
	}
	saveConfigFlag := &cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: genesis_config.toml)",
		Required: false,
	}
	inputFlag := &cli.StringFlag{
		Name:     config.FlagInput,
		Aliases:  []string{"i"},
		Usage:    "Genesis `FILE` to read",
		Required: true,
	}
	outputFlag := &cli.StringFlag{
		Name:     config.FlagOutput,
		Aliases:  []string{"o"},
		Usage:    "Genesis `FILE` to write, the input file if not set",
		Required: false,
	}
	extraOutputFlag := &cli.StringFlag{
		Name:     config.FlagExtraOutput,
		Usage:    "Additional `FILE` the genesis is written to",
		Required: false,
	}
	executionVersionFlag := &cli.UintFlag{
		Name:     config.FlagExecutionVersion,
		Usage:    "Execution version stored in the genesis, overrides the one of the input file",
		EnvVars:  []string{config.EnvExecutionVersion},
		Required: false,
	}
	localFlag := &cli.BoolFlag{
		Name:     config.FlagLocal,
		Usage:    "Replace the genesis input with the local preset built from the configured contract artifacts",
		Required: false,
	}

	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Computes the genesis state commitment of the rollup"
	app.Version = cdkgenesis.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration",
			Action:  configCmd,
		},
		{
			Name:    "generate",
			Aliases: []string{"gen"},
			Usage:   "Compute the genesis root and write it to the genesis file",
			Action:  generateCmd,
			Flags: []cli.Flag{
				configFileFlag,
				saveConfigFlag,
				inputFlag,
				outputFlag,
				extraOutputFlag,
				executionVersionFlag,
				localFlag,
			},
		},
		{
			Name:    "verify",
			Aliases: []string{},
			Usage:   "Check the genesis root stored in the genesis file",
			Action:  verifyCmd,
			Flags: []cli.Flag{
				configFileFlag,
				saveConfigFlag,
				inputFlag,
			},
		},
	}
	return app
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
