package storagelog

import (
	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/ethereum/go-ethereum/common"
)

// AccountPropertiesStorageAddress is the system address whose storage holds the
// account properties hash of every account, keyed by the padded account address.
var AccountPropertiesStorageAddress = common.HexToAddress("0x0000000000000000000000000000000000008003")

// FlatKey places slot key of address into the flat keyspace:
// BLAKE2s-256(pad32(address) || key)
func FlatKey(address common.Address, key common.Hash) common.Hash {
	padded := cdkcommon.AddressToHash(address)
	return cdkcommon.Blake2s256(padded[:], key[:])
}

// AccountPropertiesKey is the flat key holding the account properties of address
func AccountPropertiesKey(address common.Address) common.Hash {
	return FlatKey(AccountPropertiesStorageAddress, cdkcommon.AddressToHash(address))
}
