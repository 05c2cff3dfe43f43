package commitment

import (
	"math/big"

	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
)

const (
	// HistoricalBlockHashes is the number of block hashes the commitment covers
	HistoricalBlockHashes = 256
	// GenesisGasLimit is the gas limit of the genesis header
	GenesisGasLimit uint64 = 5000
)

// HistoricalBlockHashesDigest hashes the last 256 block hashes, where only the
// most recent one is known and the other 255 are zero.
func HistoricalBlockHashesDigest(blockHash common.Hash) common.Hash {
	data := make([]byte, (HistoricalBlockHashes-1)*common.HashLength, HistoricalBlockHashes*common.HashLength)
	data = append(data, blockHash[:]...)
	return cdkcommon.Blake2s256(data)
}

// Commit binds the state root and its leaf count to the block context:
// BLAKE2s-256(root || leafCount || blockNumber || historical digest || timestamp)
// with every integer encoded as a big endian uint64.
func Commit(root common.Hash, leafCount, blockNumber uint64, blockHash common.Hash, timestamp uint64) common.Hash {
	historical := HistoricalBlockHashesDigest(blockHash)
	return cdkcommon.Blake2s256(
		root[:],
		cdkcommon.Uint64ToBytes(leafCount),
		cdkcommon.Uint64ToBytes(blockNumber),
		historical[:],
		cdkcommon.Uint64ToBytes(timestamp),
	)
}

// GenesisHeader returns the header of block 0
func GenesisHeader() *types.Header {
	return &types.Header{
		ParentHash:  common.Hash{},
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    common.Address{},
		Root:        common.Hash{},
		TxHash:      common.Hash{},
		ReceiptHash: common.Hash{},
		Bloom:       types.Bloom{},
		Difficulty:  big.NewInt(0),
		Number:      big.NewInt(0),
		GasLimit:    GenesisGasLimit,
		GasUsed:     0,
		Time:        0,
		Extra:       []byte{},
		MixDigest:   common.Hash{},
		Nonce:       types.BlockNonce{},
		BaseFee:     big.NewInt(params.InitialBaseFee),
	}
}

// GenesisBlockHash is the hash of GenesisHeader
func GenesisBlockHash() common.Hash {
	return GenesisHeader().Hash()
}

// GenesisCommitment commits root at block 0 with timestamp 0
func GenesisCommitment(root common.Hash, leafCount uint64) common.Hash {
	return Commit(root, leafCount, 0, GenesisBlockHash(), 0)
}
