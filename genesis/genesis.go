package genesis

import (
	"context"
	"fmt"

	"github.com/0xPolygon/cdk-genesis/accountprops"
	"github.com/0xPolygon/cdk-genesis/commitment"
	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/0xPolygon/cdk-genesis/tree"
	"github.com/ethereum/go-ethereum/common"
)

// Input is everything the genesis state is derived from
type Input struct {
	InitialContracts     []storagelog.InitialContract
	AdditionalStorage    storagelog.StructuredStorageOverride
	AdditionalStorageRaw []storagelog.RawStorageOverride
	ExecutionVersion     uint32
}

// Result of a genesis build
type Result struct {
	// Genesis is the state commitment stored as genesis_root
	Genesis     common.Hash
	Root        common.Hash
	LeafCount   uint64
	StorageLogs *storagelog.Set
}

// Options of Build. A nil Codec uses the EVM codec and zero Tree hashes sequentially
type Options struct {
	Codec  storagelog.PropertiesCodec
	Tree   tree.Config
	Logger *log.Logger
}

// Build assembles the storage of input, computes the tree root and commits to it at block 0
func Build(ctx context.Context, input Input, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.WithFields("module", cdkcommon.GENESIS)
	}
	codec := opts.Codec
	if codec == nil {
		codec = accountprops.NewEVMCodec()
	}

	set, err := storagelog.NewAssembler(codec, nil).
		Assemble(input.InitialContracts, input.AdditionalStorageRaw, input.AdditionalStorage)
	if err != nil {
		return nil, fmt.Errorf("error assembling storage logs: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, leafCount, err := tree.NewBuilder(opts.Tree, nil).
		BuildRoot(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("error building genesis tree: %w", err)
	}

	genesis := commitment.GenesisCommitment(root, leafCount)
	logger.Infof("genesis commitment %s, root %s, %d leaves", genesis.Hex(), root.Hex(), leafCount)
	return &Result{
		Genesis:     genesis,
		Root:        root,
		LeafCount:   leafCount,
		StorageLogs: set,
	}, nil
}

// Verify rebuilds the genesis of doc and checks it against its genesis_root
func Verify(ctx context.Context, doc *Document, opts Options) (*Result, error) {
	res, err := Build(ctx, doc.Input, opts)
	if err != nil {
		return nil, err
	}
	if res.Genesis != doc.GenesisRoot {
		return res, fmt.Errorf("%w: stored %s, computed %s", ErrGenesisRootMismatch, doc.GenesisRoot.Hex(), res.Genesis.Hex())
	}
	return res, nil
}
