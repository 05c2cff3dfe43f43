package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"

	cdkgenesis "github.com/0xPolygon/cdk-genesis"
	"github.com/0xPolygon/cdk-genesis/artifacts"
	"github.com/0xPolygon/cdk-genesis/config"
	"github.com/0xPolygon/cdk-genesis/genesis"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

var errExecutionVersionOverflow = errors.New("execution version doesn't fit in 32 bits")

func setup(cliCtx *cli.Context) (*config.Config, error) {
	c, err := config.Load(cliCtx)
	if err != nil {
		return nil, err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		cdkgenesis.PrintVersion(os.Stderr)
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}
	return c, nil
}

func generateCmd(cliCtx *cli.Context) error {
	c, err := setup(cliCtx)
	if err != nil {
		return err
	}

	inputPath := cliCtx.String(config.FlagInput)
	doc, err := genesis.LoadDocument(inputPath)
	if err != nil {
		return err
	}

	if cliCtx.Bool(config.FlagLocal) {
		if c.Genesis.BaseTokenHolder == (common.Address{}) {
			log.Warnf("Genesis.BaseTokenHolder is not set, the local genesis omits the base token balance of %s",
				genesis.BaseTokenSystemContractAddr.Hex())
		}
		resolver := artifacts.NewResolver(c.Genesis.L1ArtifactsDir, c.Genesis.DAArtifactsDir, nil)
		local, err := genesis.LocalInput(resolver, c.Genesis.BaseTokenHolder)
		if err != nil {
			return fmt.Errorf("error building local genesis input: %w", err)
		}
		local.ExecutionVersion = doc.ExecutionVersion
		doc.Input = local
	}

	version, err := executionVersion(cliCtx, doc.ExecutionVersion)
	if err != nil {
		return err
	}
	doc.ExecutionVersion = version

	res, err := genesis.Build(cliCtx.Context, doc.Input, genesis.Options{Tree: c.Tree})
	if err != nil {
		return err
	}
	doc.GenesisRoot = res.Genesis

	paths := []string{cliCtx.String(config.FlagOutput)}
	if paths[0] == "" {
		paths[0] = inputPath
	}
	if extra := cliCtx.String(config.FlagExtraOutput); extra != "" {
		paths = append(paths, extra)
	}
	if err := genesis.WriteDocument(doc, paths...); err != nil {
		return err
	}
	log.Infow("genesis written",
		"genesisRoot", res.Genesis.Hex(),
		"executionVersion", doc.ExecutionVersion,
		"storageLogs", res.StorageLogs.Len(),
		"files", paths,
	)
	return nil
}

// executionVersion returns the flag or env value when given, current otherwise
func executionVersion(cliCtx *cli.Context, current uint32) (uint32, error) {
	if !cliCtx.IsSet(config.FlagExecutionVersion) {
		return current, nil
	}
	v := cliCtx.Uint(config.FlagExecutionVersion)
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", errExecutionVersionOverflow, v)
	}
	return uint32(v), nil
}

func verifyCmd(cliCtx *cli.Context) error {
	c, err := setup(cliCtx)
	if err != nil {
		return err
	}

	inputPath := cliCtx.String(config.FlagInput)
	doc, err := genesis.LoadDocument(inputPath)
	if err != nil {
		return err
	}
	res, err := genesis.Verify(cliCtx.Context, doc, genesis.Options{Tree: c.Tree})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	log.Infof("genesis root of %s verified: %s", inputPath, res.Genesis.Hex())
	return nil
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", cdkgenesis.GitRev,
		"gitBranch", cdkgenesis.GitBranch,
		"goVersion", runtime.Version(),
		"built", cdkgenesis.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
