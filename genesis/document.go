package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xPolygon/cdk-genesis/storagelog"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	fieldInitialContracts     = "initial_contracts"
	fieldAdditionalStorage    = "additional_storage"
	fieldAdditionalStorageRaw = "additional_storage_raw"
	fieldExecutionVersion     = "execution_version"
	fieldGenesisRoot          = "genesis_root"
)

// Document is the genesis descriptor. Fields it doesn't know about are kept
// untouched and written back on marshal.
type Document struct {
	Input
	GenesisRoot common.Hash

	extra map[string]json.RawMessage
}

// contractJSON is encoded as ["0x<address>", "0x<bytecode>"]
type contractJSON struct {
	Address common.Address
	Code    hexutil.Bytes
}

func (c contractJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Address, c.Code})
}

func (c *contractJSON) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 { //nolint:mnd
		return fmt.Errorf("expected [address, bytecode], got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &c.Address); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &c.Code); err != nil {
		return fmt.Errorf("invalid bytecode: %w", err)
	}
	return nil
}

// slotJSON is encoded as ["0x<key>", "0x<value>"]
type slotJSON struct {
	Key   common.Hash
	Value common.Hash
}

func (s slotJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal([]common.Hash{s.Key, s.Value})
}

func (s *slotJSON) UnmarshalJSON(data []byte) error {
	var tuple []common.Hash
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 { //nolint:mnd
		return fmt.Errorf("expected [key, value], got %d elements", len(tuple))
	}
	s.Key, s.Value = tuple[0], tuple[1]
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.extra)+5) //nolint:mnd
	for k, v := range d.extra {
		out[k] = v
	}

	contracts := make([]contractJSON, 0, len(d.InitialContracts))
	for _, c := range d.InitialContracts {
		contracts = append(contracts, contractJSON{Address: c.Address, Code: c.Bytecode})
	}
	raw := make([]slotJSON, 0, len(d.AdditionalStorageRaw))
	for _, r := range d.AdditionalStorageRaw {
		raw = append(raw, slotJSON{Key: r.Key, Value: r.Value})
	}
	structured := d.AdditionalStorage
	if structured == nil {
		structured = storagelog.StructuredStorageOverride{}
	}

	out[fieldInitialContracts] = contracts
	out[fieldAdditionalStorage] = structured
	out[fieldAdditionalStorageRaw] = raw
	out[fieldExecutionVersion] = d.ExecutionVersion
	out[fieldGenesisRoot] = d.GenesisRoot
	return json.Marshal(out)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var doc Document
	if v, ok := fields[fieldInitialContracts]; ok {
		var contracts []contractJSON
		if err := json.Unmarshal(v, &contracts); err != nil {
			return fmt.Errorf("%s: %w", fieldInitialContracts, err)
		}
		for _, c := range contracts {
			doc.InitialContracts = append(doc.InitialContracts, storagelog.InitialContract{
				Address:  c.Address,
				Bytecode: c.Code,
			})
		}
	}
	if v, ok := fields[fieldAdditionalStorage]; ok {
		if err := json.Unmarshal(v, &doc.AdditionalStorage); err != nil {
			return fmt.Errorf("%s: %w", fieldAdditionalStorage, err)
		}
	}
	if v, ok := fields[fieldAdditionalStorageRaw]; ok {
		var raw []slotJSON
		if err := json.Unmarshal(v, &raw); err != nil {
			return fmt.Errorf("%s: %w", fieldAdditionalStorageRaw, err)
		}
		for _, r := range raw {
			doc.AdditionalStorageRaw = append(doc.AdditionalStorageRaw, storagelog.RawStorageOverride{
				Key:   r.Key,
				Value: r.Value,
			})
		}
	}
	if v, ok := fields[fieldExecutionVersion]; ok {
		if err := json.Unmarshal(v, &doc.ExecutionVersion); err != nil {
			return fmt.Errorf("%s: %w", fieldExecutionVersion, err)
		}
	}
	if v, ok := fields[fieldGenesisRoot]; ok {
		if err := json.Unmarshal(v, &doc.GenesisRoot); err != nil {
			return fmt.Errorf("%s: %w", fieldGenesisRoot, err)
		}
	}

	for _, k := range []string{
		fieldInitialContracts, fieldAdditionalStorage, fieldAdditionalStorageRaw,
		fieldExecutionVersion, fieldGenesisRoot,
	} {
		delete(fields, k)
	}
	if len(fields) > 0 {
		doc.extra = fields
	}
	*d = doc
	return nil
}

// Extra returns the raw value of a field the document doesn't model
func (d *Document) Extra(name string) (json.RawMessage, bool) {
	v, ok := d.extra[name]
	return v, ok
}

// LoadDocument reads and parses the genesis descriptor at path
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return &doc, nil
}

// WriteDocument writes doc to every path. Each file is replaced atomically
func WriteDocument(doc *Document, paths ...string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding genesis: %w", err)
	}
	data = append(data, '\n')
	for _, path := range paths {
		if err := writeFileAtomic(path, data); err != nil {
			return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:mnd
		return err
	}
	return os.Rename(tmpName, path)
}
