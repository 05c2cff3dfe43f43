package types

import "github.com/ethereum/go-ethereum/common"

const (
	// Depth is the number of levels of the genesis tree
	Depth uint8 = 64
)

// Leaf of the indexed tree. NextIndex is the position of the leaf holding the
// smallest key greater than Key, wrapping to the max sentinel for the greatest key.
type Leaf struct {
	Key       common.Hash
	Value     common.Hash
	NextIndex uint64
}
