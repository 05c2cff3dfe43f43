package config

// DefaultVars are the variables the default values refer to
const DefaultVars = `
# ContractsDir is the root of the contracts repository holding the forge outputs
ContractsDir = "./contracts"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the genesis generator

[Log]
  # Environment is the environment where the generator is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Genesis]
  # L1ArtifactsDir is the forge output of l1-contracts, used with --local
  L1ArtifactsDir = "{{ContractsDir}}/l1-contracts/out"
  # DAArtifactsDir is the forge output of da-contracts, used with --local
  DAArtifactsDir = "{{ContractsDir}}/da-contracts/out"
  # BaseTokenHolder is credited with the initial base token supply by --local. Zero address skips it
  BaseTokenHolder = "0x0000000000000000000000000000000000000000"

[Tree]
  # HashWorkers is the number of goroutines hashing tree leaves. 0 or 1 is sequential
  HashWorkers = 0
`
