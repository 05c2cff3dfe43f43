package common

const (
	// ASSEMBLER name to identify the storage log assembler in logs
	ASSEMBLER = "storage-log-assembler"
	// TREE name to identify the indexed merkle tree builder in logs
	TREE = "indexed-merkle-tree"
	// COMMITMENT name to identify the genesis commitment hasher in logs
	COMMITMENT = "genesis-commitment"
	// GENESIS name to identify the genesis builder in logs
	GENESIS = "genesis"
	// ARTIFACTS name to identify the contract artifact resolver in logs
	ARTIFACTS = "artifacts"
)
