package genesis

import (
	"fmt"

	"github.com/0xPolygon/cdk-genesis/artifacts"
	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

var (
	ComplexUpgraderAddr         = common.HexToAddress("0x000000000000000000000000000000000000800f")
	GenesisUpgradeAddr          = common.HexToAddress("0x0000000000000000000000000000000000010001")
	BridgehubAddr               = common.HexToAddress("0x0000000000000000000000000000000000010002")
	AssetRouterAddr             = common.HexToAddress("0x0000000000000000000000000000000000010003")
	NativeTokenVaultAddr        = common.HexToAddress("0x0000000000000000000000000000000000010004")
	MessageRootAddr             = common.HexToAddress("0x0000000000000000000000000000000000010005")
	WrappedBaseTokenAddr        = common.HexToAddress("0x0000000000000000000000000000000000010007")
	InteropRootStorageAddr      = common.HexToAddress("0x0000000000000000000000000000000000010008")
	MessageVerificationAddr     = common.HexToAddress("0x0000000000000000000000000000000000010009")
	ChainAssetHandlerAddr       = common.HexToAddress("0x000000000000000000000000000000000001000a")
	NTVBeaconDeployerAddr       = common.HexToAddress("0x000000000000000000000000000000000001000b")
	SystemContractProxyAdmin    = common.HexToAddress("0x000000000000000000000000000000000001000c")
	InteropCenterAddr           = common.HexToAddress("0x000000000000000000000000000000000001000d")
	InteropHandlerAddr          = common.HexToAddress("0x000000000000000000000000000000000001000e")
	AssetTrackerAddr            = common.HexToAddress("0x000000000000000000000000000000000001000f")
	GWAssetTrackerAddr          = common.HexToAddress("0x0000000000000000000000000000000000010010")
	DeployerSystemContractAddr  = common.HexToAddress("0x0000000000000000000000000000000000008006")
	L1MessengerSystemContract   = common.HexToAddress("0x0000000000000000000000000000000000008008")
	BaseTokenSystemContractAddr = common.HexToAddress("0x000000000000000000000000000000000000800a")
	// ComplexUpgraderImplAddr is keccak256("L2_COMPLEX_UPGRADER_IMPL_ADDR") - 1
	ComplexUpgraderImplAddr = common.HexToAddress("0xd704e29df32c189b8613f79fcc043b2dc01d5f53")
	// DeterministicCreate2Addr is the address of the deterministic deployment proxy
	DeterministicCreate2Addr = common.HexToAddress("0x4e59b44847b379578588920cA78FbF26c0B4956C")

	Create2FactoryRuntimeBytecode = common.FromHex("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe03601600081602082378035828234f58015156039578182fd5b8082525050506014600cf3") //nolint:lll

	SystemProxyAdminOwnerSlot = common.Hash{}
	EIP1967ImplementationSlot = common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")
	EIP1967AdminSlot          = common.HexToHash("0xb53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103")

	// baseTokenBalanceMappingSlot is the slot of the balance mapping of the base token contract
	baseTokenBalanceMappingSlot = uint256.NewInt(0)
)

// LocalContract is a contract of the local preset
type LocalContract struct {
	Address common.Address
	Source  artifacts.ContractSource
}

// LocalContracts are the contracts deployed by the local genesis preset
var LocalContracts = []LocalContract{
	{ComplexUpgraderAddr, artifacts.L1Contract("SystemContractProxy")},
	{GenesisUpgradeAddr, artifacts.L1Contract("L2GenesisUpgrade")},
	{WrappedBaseTokenAddr, artifacts.L1Contract("L2WrappedBaseToken")},
	{SystemContractProxyAdmin, artifacts.L1Contract("SystemContractProxyAdmin")},
	{ComplexUpgraderImplAddr, artifacts.L1Contract("L2ComplexUpgrader")},
	{MessageRootAddr, artifacts.L1Contract("L2MessageRoot")},
	{BridgehubAddr, artifacts.L1Contract("L2BridgeHub")},
	{AssetRouterAddr, artifacts.L1Contract("L2AssetRouter")},
	{NativeTokenVaultAddr, artifacts.L1Contract("L2NativeTokenVaultZKOS")},
	{NTVBeaconDeployerAddr, artifacts.L1Contract("UpgradeableBeaconDeployer")},
	{ChainAssetHandlerAddr, artifacts.L1Contract("L2ChainAssetHandler")},
	{AssetTrackerAddr, artifacts.L1Contract("L2AssetTracker")},
	{GWAssetTrackerAddr, artifacts.L1Contract("GWAssetTracker")},
	{InteropCenterAddr, artifacts.L1Contract("InteropCenter")},
	{InteropHandlerAddr, artifacts.L1Contract("InteropHandler")},
	{InteropRootStorageAddr, artifacts.L1Contract("L2InteropRootStorage")},
	{MessageVerificationAddr, artifacts.L1Contract("L2MessageVerification")},
	{DeployerSystemContractAddr, artifacts.L1Contract("ZKOSContractDeployer")},
	{L1MessengerSystemContract, artifacts.L1Contract("L1Messenger")},
	{BaseTokenSystemContractAddr, artifacts.DAContract("L2BaseToken")},
	{DeterministicCreate2Addr, artifacts.Bytecode(Create2FactoryRuntimeBytecode)},
}

// BytecodeResolver returns the deployed bytecode of a contract source
type BytecodeResolver interface {
	Bytecode(source artifacts.ContractSource) ([]byte, error)
}

// InitialBaseTokenHolderBalance is 2^127 - 1
func InitialBaseTokenHolderBalance() *uint256.Int {
	one := uint256.NewInt(1)
	return new(uint256.Int).Sub(new(uint256.Int).Lsh(one, 127), one) //nolint:mnd
}

// LocalInput returns the local genesis preset. The execution version is left unset.
// A non zero baseTokenHolder is credited with InitialBaseTokenHolderBalance.
func LocalInput(resolver BytecodeResolver, baseTokenHolder common.Address) (Input, error) {
	contracts := make([]storagelog.InitialContract, 0, len(LocalContracts))
	for _, c := range LocalContracts {
		code, err := resolver.Bytecode(c.Source)
		if err != nil {
			return Input{}, fmt.Errorf("error resolving bytecode of %s at %s: %w", c.Source, c.Address.Hex(), err)
		}
		contracts = append(contracts, storagelog.InitialContract{Address: c.Address, Bytecode: code})
	}
	return Input{
		InitialContracts:     contracts,
		AdditionalStorage:    localStorage(baseTokenHolder),
		AdditionalStorageRaw: []storagelog.RawStorageOverride{},
	}, nil
}

func localStorage(baseTokenHolder common.Address) storagelog.StructuredStorageOverride {
	storage := storagelog.StructuredStorageOverride{
		SystemContractProxyAdmin: {
			SystemProxyAdminOwnerSlot: cdkcommon.AddressToHash(ComplexUpgraderAddr),
		},
		ComplexUpgraderAddr: {
			EIP1967ImplementationSlot: cdkcommon.AddressToHash(ComplexUpgraderImplAddr),
			EIP1967AdminSlot:          cdkcommon.AddressToHash(SystemContractProxyAdmin),
		},
	}
	if baseTokenHolder != (common.Address{}) {
		slot := SolidityMappingSlot(baseTokenHolder, baseTokenBalanceMappingSlot)
		storage[BaseTokenSystemContractAddr] = map[common.Hash]common.Hash{
			slot: InitialBaseTokenHolderBalance().Bytes32(),
		}
	}
	return storage
}

// SolidityMappingSlot is the storage slot of key in a mapping(address => ...) declared at mappingSlot:
// keccak256(pad32(key) || mappingSlot as big endian uint256)
func SolidityMappingSlot(key common.Address, mappingSlot *uint256.Int) common.Hash {
	padded := cdkcommon.AddressToHash(key)
	slot := mappingSlot.Bytes32()
	return common.BytesToHash(keccak256.Hash(padded[:], slot[:]))
}
