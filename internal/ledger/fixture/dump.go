// Package fixture loads YAML ledger dumps into in-memory anchoring snapshots.
package fixture

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Dump is a ledger history replayed block by block.
type Dump struct {
	Network model.Network `yaml:"network"`
	Config  ConfigDump    `yaml:"config"`
	Blocks  []BlockDump   `yaml:"blocks"`
}

// ConfigDump is an anchoring config. The network is inherited from the dump.
type ConfigDump struct {
	ActualFrom    uint64     `yaml:"actual_from"`
	AnchoringKeys []HexBytes `yaml:"anchoring_keys"`
}

// BlockDump lists what the ledger recorded in one block, applied in field order before the block is committed.
type BlockDump struct {
	Following  *ConfigDump         `yaml:"following_config"`
	Rotate     bool                `yaml:"rotate"`
	Entries    []EntryDump         `yaml:"entries"`
	Anchors    []AnchorDump        `yaml:"anchors"`
	Lects      []LectDump          `yaml:"lects"`
	TxHash     HexBytes            `yaml:"tx_hash"`
	Precommits map[uint32]HexBytes `yaml:"precommits"`
}

// EntryDump is a key written by another ledger service into one of its tables.
type EntryDump struct {
	Service uint16   `yaml:"service"`
	Table   uint16   `yaml:"table"`
	Key     HexBytes `yaml:"key"`
	Value   HexBytes `yaml:"value"`
}

// AnchorDump is an anchoring transaction committed to the anchor chain.
// Either Tx is set, or PayloadHeight and Spends describe a transaction built against
// the ledger's own block hash and the active config's address.
type AnchorDump struct {
	Name          string   `yaml:"name"`
	Tx            HexBytes `yaml:"tx"`
	PayloadHeight *uint64  `yaml:"payload_height"`
	Spends        string   `yaml:"spends"`
	Value         int64    `yaml:"value"`
}

// LectDump is a validator report. Anchor refers to a named AnchorDump instead of a raw Tx.
type LectDump struct {
	Validator uint32   `yaml:"validator"`
	Tx        HexBytes `yaml:"tx"`
	Anchor    string   `yaml:"anchor"`
}

// HexBytes decodes a hex string scalar.
type HexBytes []byte

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexBytes) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("line %d: decode hex: %w", node.Line, err)
	}
	*h = b
	return nil
}

// Parse decodes a dump.
func Parse(data []byte) (Dump, error) {
	var dump Dump
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return Dump{}, fmt.Errorf("parse ledger dump: %w", err)
	}
	if dump.Network == "" {
		dump.Network = model.Regtest
	}
	return dump, nil
}

// Load reads, decodes and replays the dump at path.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger dump: %w", err)
	}
	dump, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(dump)
}

func (c ConfigDump) config(network model.Network) model.AnchoringConfig {
	keys := make([][]byte, 0, len(c.AnchoringKeys))
	for _, key := range c.AnchoringKeys {
		keys = append(keys, key)
	}
	return model.AnchoringConfig{Network: network, AnchoringKeys: keys, ActualFrom: c.ActualFrom}
}
