package common

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2s"
)

// Blake2s256 hashes the concatenation of data with unkeyed BLAKE2s-256
func Blake2s256(data ...[]byte) common.Hash {
	hasher, err := blake2s.New256(nil)
	if err != nil {
		// only fails for keys longer than 32 bytes
		panic(err)
	}
	for _, d := range data {
		hasher.Write(d)
	}
	var h common.Hash
	copy(h[:], hasher.Sum(nil))
	return h
}

// HashPair returns BLAKE2s-256(left || right)
func HashPair(left, right common.Hash) common.Hash {
	var buf [2 * common.HashLength]byte
	copy(buf[:common.HashLength], left[:])
	copy(buf[common.HashLength:], right[:])
	return common.Hash(blake2s.Sum256(buf[:]))
}
