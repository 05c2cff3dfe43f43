package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/0xPolygon/cdk-genesis/genesis"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/0xPolygon/cdk-genesis/tree"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagInput is the flag for the genesis file to read
	FlagInput = "input"
	// FlagOutput is the flag for the genesis file to write, defaults to the input
	FlagOutput = "output"
	// FlagExtraOutput is the flag for an additional copy of the written genesis file
	FlagExtraOutput = "extra-output"
	// FlagExecutionVersion is the flag for the execution version stored in the genesis file
	FlagExecutionVersion = "execution-version"
	// FlagLocal is the flag to replace the genesis input with the local preset
	FlagLocal = "local"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	// EnvExecutionVersion overrides the execution version when the flag isn't set
	EnvExecutionVersion = EnvVarPrefix + "_EXECUTION_VERSION"

	EnvVarPrefix       = "GENESIS"
	ConfigType         = "toml"
	SaveConfigFileName = "genesis_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the genesis generator
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the components, allow also to store the logs in a file
	Log log.Config
	// Genesis holds where contract artifacts are read from for the local preset
	Genesis genesis.Config
	// Tree configures how the genesis tree is hashed
	Tree tree.Config
}

// Load loads the configuration from the files passed with --cfg on top of the defaults
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile renders the defaults followed by files and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderer := NewRenderer(fileData, EnvVarPrefix)

	renderedCfg, err := renderer.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBufferString(configData))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	err = v.Unmarshal(cfg, decodeHooks...)
	if err != nil {
		return err
	}

	expectedKeys, err := defaultKeys(configType)
	if err != nil {
		return err
	}
	for _, field := range getUnexpectedFields(v.AllKeys(), expectedKeys) {
		log.Debugf("field %s in config file doesnt have a default value", field)
	}
	return nil
}

// defaultKeys returns the keys defined by the default configuration
func defaultKeys(configType string) ([]string, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewBufferString(DefaultVars + DefaultValues)); err != nil {
		return nil, fmt.Errorf("error reading default config. Err: %w", err)
	}
	return v.AllKeys(), nil
}

func getUnexpectedFields(keysOnFile, expectedConfigKeys []string) []string {
	wrongFields := make([]string, 0)
	for _, key := range keysOnFile {
		if !slices.Contains(expectedConfigKeys, key) {
			wrongFields = append(wrongFields, key)
		}
	}
	return wrongFields
}
