package accountprops

import "github.com/ethereum/go-ethereum/common"

// EVMCodec derives the account properties hash of a deployed EVM contract
type EVMCodec struct{}

// NewEVMCodec returns the codec used for genesis contracts
func NewEVMCodec() *EVMCodec {
	return &EVMCodec{}
}

// PropertiesHash returns the properties hash of an account with the given nonce and code
func (c *EVMCodec) PropertiesHash(nonce uint64, code []byte) (common.Hash, error) {
	props := AccountProperties{Nonce: nonce}
	if err := props.SetCode(code); err != nil {
		return common.Hash{}, err
	}
	return props.Hash(), nil
}
