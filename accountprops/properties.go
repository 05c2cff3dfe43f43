package accountprops

import (
	"errors"
	"fmt"
	"math"

	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// EncodedSize is the length of the AccountProperties preimage
	EncodedSize = 8 + 8 + 32 + 32 + 4 + 4 + 32 + 4
	// MaxCodeLen is the longest code whose lengths fit the encoding
	MaxCodeLen = math.MaxUint32
)

// DeployedVersioning marks an account as deployed EVM code, code version 1.
var DeployedVersioning = [8]byte{1, 1, 1, 0, 0, 0, 0, 0}

// ErrCodeTooLong is returned for code whose length does not fit in 32 bits
var ErrCodeTooLong = errors.New("bytecode too long")

// AccountProperties is the per-account record committed to the state tree under
// the account properties storage address.
type AccountProperties struct {
	Versioning             [8]byte
	Nonce                  uint64
	Balance                common.Hash
	BytecodeHash           common.Hash
	UnpaddedCodeLen        uint32
	ArtifactsLen           uint32
	ObservableBytecodeHash common.Hash
	ObservableBytecodeLen  uint32
}

// SetCode fills the code related fields and marks the account as deployed
func (p *AccountProperties) SetCode(code []byte) error {
	if uint64(len(code)) > MaxCodeLen {
		return fmt.Errorf("%w: %d bytes", ErrCodeTooLong, len(code))
	}
	full, artifactsLen := FullBytecode(code)
	if uint64(artifactsLen) > MaxCodeLen {
		return fmt.Errorf("%w: %d artifact bytes", ErrCodeTooLong, artifactsLen)
	}

	p.Versioning = DeployedVersioning
	p.BytecodeHash = cdkcommon.Blake2s256(full)
	p.UnpaddedCodeLen = uint32(len(code))
	p.ArtifactsLen = uint32(artifactsLen)
	p.ObservableBytecodeHash = crypto.Keccak256Hash(code)
	p.ObservableBytecodeLen = uint32(len(code))
	return nil
}

// Encode serializes the properties, integers big-endian
func (p *AccountProperties) Encode() []byte {
	out := make([]byte, 0, EncodedSize)
	out = append(out, p.Versioning[:]...)
	out = append(out, cdkcommon.Uint64ToBytes(p.Nonce)...)
	out = append(out, p.Balance[:]...)
	out = append(out, p.BytecodeHash[:]...)
	out = append(out, cdkcommon.Uint32ToBytes(p.UnpaddedCodeLen)...)
	out = append(out, cdkcommon.Uint32ToBytes(p.ArtifactsLen)...)
	out = append(out, p.ObservableBytecodeHash[:]...)
	out = append(out, cdkcommon.Uint32ToBytes(p.ObservableBytecodeLen)...)
	return out
}

// Hash returns BLAKE2s-256 of the encoded properties
func (p *AccountProperties) Hash() common.Hash {
	return cdkcommon.Blake2s256(p.Encode())
}
