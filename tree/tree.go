package tree

import (
	"context"
	"errors"
	"fmt"

	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/0xPolygon/cdk-genesis/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const (
	// MinSentinelIndex is the position of the all-zero key leaf
	MinSentinelIndex uint64 = 0
	// MaxSentinelIndex is the position of the all-0xff key leaf
	MaxSentinelIndex uint64 = 1

	firstEntryIndex = 2
)

var ErrReductionDidNotCollapse = errors.New("tree reduction did not collapse to a single root")

// Config of the tree builder
type Config struct {
	// HashWorkers is the number of goroutines hashing leaves. 0 or 1 hashes sequentially
	HashWorkers int `mapstructure:"HashWorkers"`
}

// Builder computes the root of the genesis tree
type Builder struct {
	cfg    Config
	logger *log.Logger
}

// NewBuilder returns a Builder. A nil logger uses the default one
func NewBuilder(cfg Config, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.WithFields("module", cdkcommon.TREE)
	}
	return &Builder{
		cfg:    cfg,
		logger: logger,
	}
}

// BuildRoot sequentially computes the root and leaf count of the tree holding set
func BuildRoot(set *storagelog.Set) (common.Hash, uint64, error) {
	return NewBuilder(Config{}, nil).BuildRoot(context.Background(), set)
}

// BuildRoot computes the root and leaf count of the tree holding set
func (b *Builder) BuildRoot(ctx context.Context, set *storagelog.Set) (common.Hash, uint64, error) {
	leaves := BuildLeaves(set)
	hashes, err := b.HashLeaves(ctx, leaves)
	if err != nil {
		return common.Hash{}, 0, err
	}
	root, err := reduce(types.Depth, hashes)
	if err != nil {
		return common.Hash{}, 0, err
	}
	b.logger.Debugf("tree root %s with %d leaves", root.Hex(), len(leaves))
	return root, uint64(len(leaves)), nil
}

// BuildLeaves returns the two sentinels followed by one leaf per entry of set,
// ascending by key, with the linked list of next indexes in place.
func BuildLeaves(set *storagelog.Set) []types.Leaf {
	entries := set.Entries()
	leaves := make([]types.Leaf, 0, firstEntryIndex+len(entries))
	// the min sentinel always points to index 2, even when no entry is stored there
	leaves = append(leaves,
		types.Leaf{Key: common.Hash{}, Value: common.Hash{}, NextIndex: firstEntryIndex},
		types.Leaf{Key: cdkcommon.MaxHash(), Value: common.Hash{}, NextIndex: MaxSentinelIndex},
	)
	for i, e := range entries {
		next := uint64(firstEntryIndex + i + 1)
		if i == len(entries)-1 {
			next = MaxSentinelIndex
		}
		leaves = append(leaves, types.Leaf{Key: e.Key, Value: e.Value, NextIndex: next})
	}
	return leaves
}

// HashLeaf returns BLAKE2s-256(key || value || next index as little endian uint64)
func HashLeaf(leaf types.Leaf) common.Hash {
	return cdkcommon.Blake2s256(leaf.Key[:], leaf.Value[:], cdkcommon.Uint64ToLEBytes(leaf.NextIndex))
}

// HashLeaves hashes leaves, splitting the work across the configured workers
func (b *Builder) HashLeaves(ctx context.Context, leaves []types.Leaf) ([]common.Hash, error) {
	hashes := make([]common.Hash, len(leaves))
	workers := b.cfg.HashWorkers
	if workers <= 1 || len(leaves) < workers {
		for i, l := range leaves {
			hashes[i] = HashLeaf(l)
		}
		return hashes, ctx.Err()
	}

	chunk := (len(leaves) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(leaves); start += chunk {
		end := min(start+chunk, len(leaves))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				hashes[i] = HashLeaf(leaves[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error hashing leaves: %w", err)
	}
	return hashes, nil
}

// CalculateRoot hashes leaves and reduces them over depth levels
func CalculateRoot(depth uint8, leaves []types.Leaf) (common.Hash, error) {
	hashes := make([]common.Hash, len(leaves))
	for i, l := range leaves {
		hashes[i] = HashLeaf(l)
	}
	return reduce(depth, hashes)
}

func reduce(depth uint8, nodes []common.Hash) (common.Hash, error) {
	emptyHashes := generateEmptyHashes(depth)
	for h := 0; h < int(depth); h++ {
		next := make([]common.Hash, 0, (len(nodes)+1)/2) //nolint:mnd
		for i := 0; i < len(nodes); i += 2 {
			right := emptyHashes[h]
			if i+1 < len(nodes) {
				right = nodes[i+1]
			}
			next = append(next, cdkcommon.HashPair(nodes[i], right))
		}
		nodes = next
	}
	if len(nodes) != 1 {
		return common.Hash{}, fmt.Errorf("%w: %d nodes left after %d levels", ErrReductionDidNotCollapse, len(nodes), depth)
	}
	return nodes[0], nil
}

// generateEmptyHashes returns the root of an empty subtree for every level.
// Level 0 is the hash of the all-zero leaf.
func generateEmptyHashes(depth uint8) []common.Hash {
	emptyHashes := []common.Hash{
		HashLeaf(types.Leaf{}),
	}
	for i := 1; i <= int(depth); i++ {
		emptyHashes = append(emptyHashes, cdkcommon.HashPair(emptyHashes[i-1], emptyHashes[i-1]))
	}
	return emptyHashes
}
