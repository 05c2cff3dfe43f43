package testvectors

import (
	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/ethereum/go-ethereum/common"
)

// EntryRaw is a flat storage slot
type EntryRaw struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RootVectorRaw is a storage set and the tree it must produce
type RootVectorRaw struct {
	Entries      []EntryRaw `json:"entries"`
	ExpectedRoot string     `json:"root"`
	LeafCount    uint64     `json:"leafCount"`
}

// Set inserts the entries of the vector into a new storage set
func (v *RootVectorRaw) Set() (*storagelog.Set, error) {
	set := storagelog.NewSet()
	for _, e := range v.Entries {
		if err := set.Insert(common.HexToHash(e.Key), common.HexToHash(e.Value)); err != nil {
			return nil, err
		}
	}
	return set, nil
}
