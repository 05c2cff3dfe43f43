package genesis

import "github.com/ethereum/go-ethereum/common"

// Config is the configuration of the genesis generator
type Config struct {
	// L1ArtifactsDir is the forge output directory of l1-contracts, used by the local preset
	L1ArtifactsDir string `mapstructure:"L1ArtifactsDir"`
	// DAArtifactsDir is the forge output directory of da-contracts, used by the local preset
	DAArtifactsDir string `mapstructure:"DAArtifactsDir"`
	// BaseTokenHolder receives the initial base token balance in the local preset.
	// The balance entry is omitted when it's the zero address
	BaseTokenHolder common.Address `mapstructure:"BaseTokenHolder"`
}
