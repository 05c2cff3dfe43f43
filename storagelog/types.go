package storagelog

import "github.com/ethereum/go-ethereum/common"

// InitialContract is a contract that exists at genesis
type InitialContract struct {
	Address  common.Address
	Bytecode []byte
}

// RawStorageOverride is an already flattened storage slot
type RawStorageOverride struct {
	Key   common.Hash
	Value common.Hash
}

// StructuredStorageOverride maps address -> slot -> value
type StructuredStorageOverride map[common.Address]map[common.Hash]common.Hash

// PropertiesCodec derives the account properties hash of a contract
type PropertiesCodec interface {
	PropertiesHash(nonce uint64, code []byte) (common.Hash, error)
}
