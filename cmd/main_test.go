package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xPolygon/cdk-genesis/artifacts"
	"github.com/0xPolygon/cdk-genesis/config"
	"github.com/0xPolygon/cdk-genesis/genesis"
	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const singleContractGenesis = `{
  "initial_contracts": [["0x0000000000000000000000000000000000010001", "0x00"]],
  "additional_storage": {},
  "additional_storage_raw": [],
  "execution_version": 3,
  "genesis_root": "0x0000000000000000000000000000000000000000000000000000000000000000",
  "protocol_semantic_version": "0.30.0"
}`

var singleContractRoot = common.HexToHash("0xa3f6be6af985084176d2af13cdfd0d744c17952d9ee9a16f59e5e74261c61da7")

func writeGenesis(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{appName}, args...))
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	input := writeGenesis(t, singleContractGenesis)
	extra := filepath.Join(t.TempDir(), "latest.json")

	_, err := run(t, "generate", "--input", input, "--extra-output", extra)
	require.NoError(t, err)

	for _, path := range []string{input, extra} {
		doc, err := genesis.LoadDocument(path)
		require.NoError(t, err)
		require.Equal(t, singleContractRoot, doc.GenesisRoot)
		require.Equal(t, uint32(3), doc.ExecutionVersion)
		version, ok := doc.Extra("protocol_semantic_version")
		require.True(t, ok)
		require.JSONEq(t, `"0.30.0"`, string(version))
	}

	_, err = run(t, "verify", "--input", input)
	require.NoError(t, err)
}

func TestGenerateToOutput(t *testing.T) {
	input := writeGenesis(t, singleContractGenesis)
	output := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)

	unchanged, err := os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, singleContractGenesis, string(unchanged))

	doc, err := genesis.LoadDocument(output)
	require.NoError(t, err)
	require.Equal(t, singleContractRoot, doc.GenesisRoot)
}

func TestGenerateExecutionVersion(t *testing.T) {
	testCases := []struct {
		name     string
		env      string
		args     []string
		expected uint32
	}{
		{name: "from file", expected: 3},
		{name: "from env", env: "4", expected: 4},
		{name: "flag over env", env: "4", args: []string{"--execution-version", "5"}, expected: 5},
		{name: "flag", args: []string{"--execution-version", "7"}, expected: 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env != "" {
				t.Setenv(config.EnvExecutionVersion, tc.env)
			}
			input := writeGenesis(t, singleContractGenesis)
			args := append([]string{"generate", "--input", input}, tc.args...)
			_, err := run(t, args...)
			require.NoError(t, err)

			doc, err := genesis.LoadDocument(input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, doc.ExecutionVersion)
			// the execution version isn't part of the commitment
			require.Equal(t, singleContractRoot, doc.GenesisRoot)
		})
	}
}

func TestGenerateExecutionVersionOverflow(t *testing.T) {
	input := writeGenesis(t, singleContractGenesis)
	_, err := run(t, "generate", "--input", input, "--execution-version", "4294967296")
	require.ErrorIs(t, err, errExecutionVersionOverflow)
}

func TestGenerateFailureWritesNothing(t *testing.T) {
	content := `{
  "initial_contracts": [],
  "additional_storage_raw": [
    ["0x0000000000000000000000000000000000000000000000000000000000000001", "0x0000000000000000000000000000000000000000000000000000000000000001"],
    ["0x0000000000000000000000000000000000000000000000000000000000000001", "0x0000000000000000000000000000000000000000000000000000000000000002"]
  ],
  "execution_version": 1,
  "genesis_root": "0x0000000000000000000000000000000000000000000000000000000000000000"
}`
	input := writeGenesis(t, content)
	output := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "generate", "--input", input, "--output", output)
	require.ErrorIs(t, err, storagelog.ErrDuplicateKey)
	_, err = os.Stat(output)
	require.ErrorIs(t, err, os.ErrNotExist)

	unchanged, err := os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, content, string(unchanged))
}

func writeLocalArtifacts(t *testing.T) (l1Dir, daDir string) {
	t.Helper()
	l1Dir, daDir = t.TempDir(), t.TempDir()
	for i, c := range genesis.LocalContracts {
		dir := l1Dir
		switch c.Source.Kind {
		case artifacts.KindDAContract:
			dir = daDir
		case artifacts.KindBytecode:
			continue
		}
		path := artifacts.Path(dir, c.Source.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		content := fmt.Sprintf(`{"deployedBytecode":{"object":"0x60%02x00"}}`, i)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return l1Dir, daDir
}

func TestGenerateLocal(t *testing.T) {
	l1Dir, daDir := writeLocalArtifacts(t)
	cfgFile := filepath.Join(t.TempDir(), "genesis.toml")
	cfg := fmt.Sprintf("[Genesis]\nL1ArtifactsDir = %q\nDAArtifactsDir = %q\n", l1Dir, daDir)
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfg), 0o600))

	input := writeGenesis(t, singleContractGenesis)
	_, err := run(t, "generate", "--cfg", cfgFile, "--input", input, "--local")
	require.NoError(t, err)

	doc, err := genesis.LoadDocument(input)
	require.NoError(t, err)
	require.Len(t, doc.InitialContracts, len(genesis.LocalContracts))
	require.Equal(t, uint32(3), doc.ExecutionVersion)
	require.Equal(t, common.HexToHash("0x02335a5caade4ae4ef5b2711a4915d9affea62a5ef94082aec0a7c5ce5e61e43"), doc.GenesisRoot)

	_, err = run(t, "verify", "--input", input)
	require.NoError(t, err)
}

func TestGenerateLocalBaseTokenHolder(t *testing.T) {
	const warning = "Genesis.BaseTokenHolder is not set"
	l1Dir, daDir := writeLocalArtifacts(t)

	testCases := []struct {
		name        string
		holder      string
		genesisRoot string
		warned      bool
	}{
		{
			name:        "no holder",
			holder:      "0x0000000000000000000000000000000000000000",
			genesisRoot: "0x02335a5caade4ae4ef5b2711a4915d9affea62a5ef94082aec0a7c5ce5e61e43",
			warned:      true,
		},
		{
			name:        "holder",
			holder:      "0x36615Cf349d7F6344891B1e7CA7C72883F5dc049",
			genesisRoot: "0xb98548b929d891b3138df05d55d0ed3dccff5f9d752b28ea78b72fcd7b6281ed",
			warned:      false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			logFile := filepath.Join(dir, "genesis.log")
			cfgFile := filepath.Join(dir, "genesis.toml")
			cfg := fmt.Sprintf(`[Log]
Environment = "production"
Level = "info"
Outputs = [%q]

[Genesis]
L1ArtifactsDir = %q
DAArtifactsDir = %q
BaseTokenHolder = %q
`, logFile, l1Dir, daDir, tc.holder)
			require.NoError(t, os.WriteFile(cfgFile, []byte(cfg), 0o600))

			input := writeGenesis(t, singleContractGenesis)
			_, err := run(t, "generate", "--cfg", cfgFile, "--input", input, "--local")
			require.NoError(t, err)

			doc, err := genesis.LoadDocument(input)
			require.NoError(t, err)
			require.Equal(t, common.HexToHash(tc.genesisRoot), doc.GenesisRoot)

			logs, err := os.ReadFile(logFile)
			require.NoError(t, err)
			require.Equal(t, tc.warned, strings.Contains(string(logs), warning))
		})
	}
}

func TestVerifyMismatch(t *testing.T) {
	input := writeGenesis(t, singleContractGenesis)
	_, err := run(t, "verify", "--input", input)
	require.ErrorIs(t, err, genesis.ErrGenesisRootMismatch)
	require.Contains(t, err.Error(), input)

	_, err = run(t, "verify", "--input", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, genesis.ErrIO)
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "[Genesis]")
	require.Contains(t, out, "HashWorkers")

	cfg, err := config.LoadFile([]config.FileData{{Name: "printed", Content: out}}, "")
	require.NoError(t, err)
	require.Equal(t, "./contracts/l1-contracts/out", cfg.Genesis.L1ArtifactsDir)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:")
}

func TestGeneratedFileIsIndented(t *testing.T) {
	input := writeGenesis(t, singleContractGenesis)
	_, err := run(t, "generate", "--input", input)
	require.NoError(t, err)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	require.Contains(t, string(data), "\n  \"genesis_root\": \""+singleContractRoot.Hex()+"\"")
}
