package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// HashLength is the width of every storage key, value and node hash
	HashLength = common.HashLength
	// AddressPadding is the number of leading zero bytes of an address widened to 32 bytes
	AddressPadding = common.HashLength - common.AddressLength
)

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// BytesToUint64 converts a byte slice to a uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}

// Uint64ToLEBytes converts a uint64 to a byte slice in little-endian order
func Uint64ToLEBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.LittleEndian.PutUint64(bytes, num)

	return bytes
}

// LEBytesToUint64 converts a little-endian byte slice to a uint64
func LEBytesToUint64(bytes []byte) uint64 {
	return binary.LittleEndian.Uint64(bytes)
}

// Uint32ToBytes converts a uint32 to a byte slice in big-endian order
func Uint32ToBytes(num uint32) []byte {
	const uint32ByteSize = 4

	key := make([]byte, uint32ByteSize)
	binary.BigEndian.PutUint32(key, num)

	return key
}

// BytesToUint32 converts a byte slice to a uint32
func BytesToUint32(bytes []byte) uint32 {
	return binary.BigEndian.Uint32(bytes)
}

// AddressToHash widens an address to 32 bytes, right aligned (12 leading zero bytes)
func AddressToHash(addr common.Address) common.Hash {
	var h common.Hash
	copy(h[AddressPadding:], addr[:])
	return h
}

// MaxHash returns the greatest 32 byte value (all bytes 0xff)
func MaxHash() common.Hash {
	var h common.Hash
	for i := range h {
		h[i] = 0xff
	}
	return h
}
