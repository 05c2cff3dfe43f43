package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cdkcommon "github.com/0xPolygon/cdk-genesis/common"
	"github.com/0xPolygon/cdk-genesis/log"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrNoDeployedBytecode = errors.New("no deployed bytecode found in artifact")
	ErrUnknownSource      = errors.New("unknown contract source")
)

// SourceKind tells where the bytecode of a contract is taken from
type SourceKind uint8

const (
	// KindL1Contract is a compiled artifact of the l1-contracts project
	KindL1Contract SourceKind = iota + 1
	// KindDAContract is a compiled artifact of the da-contracts project
	KindDAContract
	// KindBytecode is bytecode given inline
	KindBytecode
)

// ContractSource identifies the deployed bytecode of a genesis contract
type ContractSource struct {
	Kind     SourceKind
	Name     string
	Bytecode []byte
}

// L1Contract returns the source of the l1-contracts artifact called name
func L1Contract(name string) ContractSource {
	return ContractSource{Kind: KindL1Contract, Name: name}
}

// DAContract returns the source of the da-contracts artifact called name
func DAContract(name string) ContractSource {
	return ContractSource{Kind: KindDAContract, Name: name}
}

// Bytecode returns an inline source
func Bytecode(code []byte) ContractSource {
	return ContractSource{Kind: KindBytecode, Bytecode: code}
}

func (s ContractSource) String() string {
	switch s.Kind {
	case KindL1Contract:
		return "l1:" + s.Name
	case KindDAContract:
		return "da:" + s.Name
	case KindBytecode:
		return fmt.Sprintf("inline:%d bytes", len(s.Bytecode))
	default:
		return "unknown"
	}
}

// Resolver loads deployed bytecode from forge output directories
type Resolver struct {
	L1Dir  string
	DADir  string
	logger *log.Logger
}

// NewResolver returns a Resolver reading artifacts under l1Dir and daDir
func NewResolver(l1Dir, daDir string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.WithFields("module", cdkcommon.ARTIFACTS)
	}
	return &Resolver{
		L1Dir:  l1Dir,
		DADir:  daDir,
		logger: logger,
	}
}

// Bytecode returns the deployed bytecode of source
func (r *Resolver) Bytecode(source ContractSource) ([]byte, error) {
	switch source.Kind {
	case KindL1Contract:
		return r.fromArtifact(r.L1Dir, source.Name)
	case KindDAContract:
		return r.fromArtifact(r.DADir, source.Name)
	case KindBytecode:
		code := make([]byte, len(source.Bytecode))
		copy(code, source.Bytecode)
		return code, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSource, source.Kind)
	}
}

// Path returns the location of the artifact of the contract name under dir
func Path(dir, name string) string {
	return filepath.Join(dir, name+".sol", name+".json")
}

type artifact struct {
	DeployedBytecode struct {
		Object string `json:"object"`
	} `json:"deployedBytecode"`
}

func (r *Resolver) fromArtifact(dir, name string) ([]byte, error) {
	path := Path(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading artifact %s: %w", path, err)
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("error parsing artifact %s: %w", path, err)
	}
	object := a.DeployedBytecode.Object
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("%w: %s", ErrNoDeployedBytecode, path)
	}
	code, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("error decoding deployed bytecode of %s: %w", path, err)
	}
	r.logger.Debugf("loaded %d bytes of %s from %s", len(code), name, path)
	return code, nil
}
