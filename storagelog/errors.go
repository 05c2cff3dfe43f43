package storagelog

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrDuplicateKey is returned when two storage sources resolve to the same flat key
	ErrDuplicateKey = errors.New("duplicate storage key")
	// ErrCodec is returned when the account properties of a contract can't be computed
	ErrCodec = errors.New("account properties codec failed")
)

// Source identifies where a storage entry comes from
type Source uint8

const (
	SourceUnknown Source = iota
	SourceContract
	SourceRaw
	SourceStructured
)

func (s Source) String() string {
	switch s {
	case SourceContract:
		return "initial_contracts"
	case SourceRaw:
		return "additional_storage_raw"
	case SourceStructured:
		return "additional_storage"
	default:
		return "unknown"
	}
}

// DuplicateKeyError carries the colliding key and, when known, the entry that collided
type DuplicateKeyError struct {
	Key     common.Hash
	Source  Source
	Address *common.Address
	Slot    *common.Hash
}

func (e *DuplicateKeyError) Error() string {
	switch {
	case e.Address != nil && e.Slot != nil:
		return fmt.Sprintf("%s %s in %s (address %s, slot %s)",
			ErrDuplicateKey, e.Key.Hex(), e.Source, e.Address.Hex(), e.Slot.Hex())
	case e.Address != nil:
		return fmt.Sprintf("%s %s in %s (address %s)", ErrDuplicateKey, e.Key.Hex(), e.Source, e.Address.Hex())
	case e.Source != SourceUnknown:
		return fmt.Sprintf("%s %s in %s", ErrDuplicateKey, e.Key.Hex(), e.Source)
	default:
		return fmt.Sprintf("%s %s", ErrDuplicateKey, e.Key.Hex())
	}
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func withOrigin(err error, source Source, address *common.Address, slot *common.Hash) error {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		dup.Source = source
		dup.Address = address
		dup.Slot = slot
	}
	return err
}
