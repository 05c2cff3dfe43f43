package storagelog

import (
	"bytes"
	"fmt"
	"slices"

	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/ethereum/go-ethereum/common"
)

// DeployedContractNonce is the nonce of every contract deployed at genesis
const DeployedContractNonce = 1

// Assembler flattens the genesis storage sources into a single Set
type Assembler struct {
	codec  PropertiesCodec
	logger *log.Logger
}

// NewAssembler creates an Assembler using codec for the account properties
func NewAssembler(codec PropertiesCodec, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.WithFields("module", cdkcommon.ASSEMBLER)
	}
	return &Assembler{
		codec:  codec,
		logger: logger,
	}
}

// Assemble merges, in this order, the account properties of contracts, the raw
// overrides and the structured overrides. Any key produced twice is an error.
func (a *Assembler) Assemble(
	contracts []InitialContract,
	raw []RawStorageOverride,
	structured StructuredStorageOverride,
) (*Set, error) {
	set := NewSet()

	for _, c := range contracts {
		value, err := a.codec.PropertiesHash(DeployedContractNonce, c.Bytecode)
		if err != nil {
			return nil, fmt.Errorf("%w: contract %s: %w", ErrCodec, c.Address.Hex(), err)
		}
		addr := c.Address
		if err := set.Insert(AccountPropertiesKey(addr), value); err != nil {
			return nil, withOrigin(err, SourceContract, &addr, nil)
		}
	}

	for _, r := range raw {
		if err := set.Insert(r.Key, r.Value); err != nil {
			return nil, withOrigin(err, SourceRaw, nil, nil)
		}
	}

	for _, addr := range sortedAddresses(structured) {
		slots := structured[addr]
		for _, slot := range sortedSlots(slots) {
			if err := set.Insert(FlatKey(addr, slot), slots[slot]); err != nil {
				addr, slot := addr, slot
				return nil, withOrigin(err, SourceStructured, &addr, &slot)
			}
		}
	}

	a.logger.Debugf("assembled %d storage logs: %d contracts, %d raw, %d structured",
		set.Len(), len(contracts), len(raw), set.Len()-len(contracts)-len(raw))
	return set, nil
}

func sortedAddresses(m StructuredStorageOverride) []common.Address {
	addrs := make([]common.Address, 0, len(m))
	for addr := range m {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return addrs
}

func sortedSlots(m map[common.Hash]common.Hash) []common.Hash {
	slots := make([]common.Hash, 0, len(m))
	for slot := range m {
		slots = append(slots, slot)
	}
	slices.SortFunc(slots, compareKeys)
	return slots
}
