package model

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeader is the part of a ledger block covered by validator precommits.
type BlockHeader struct {
	Height    uint64         `json:"height"`
	PrevHash  chainhash.Hash `json:"prev_hash"`
	TxHash    chainhash.Hash `json:"tx_hash"`
	StateHash chainhash.Hash `json:"state_hash"`
}

// Hash returns the block hash.
func (h BlockHeader) Hash() chainhash.Hash {
	buf := make([]byte, 0, 8+3*chainhash.HashSize)
	buf = binary.BigEndian.AppendUint64(buf, h.Height)
	buf = append(buf, h.PrevHash[:]...)
	buf = append(buf, h.TxHash[:]...)
	buf = append(buf, h.StateHash[:]...)
	return chainhash.HashH(buf)
}

// Precommit is a validator vote for a block. Signatures are checked by the ledger, not here.
type Precommit struct {
	Validator uint32         `json:"validator"`
	BlockHash chainhash.Hash `json:"block_hash"`
	Signature []byte         `json:"signature"`
}

// BlockProof is a block together with the precommits that authorized it.
type BlockProof struct {
	Block      BlockHeader `json:"block"`
	Precommits []Precommit `json:"precommits"`
}

// ProofStep is a sibling hash on a Merkle path. Left reports that the sibling is the left operand.
type ProofStep struct {
	Left  bool   `json:"left"`
	Value []byte `json:"value"`
}

// MapLeaf is a key/value leaf of a committed map with its Merkle path.
type MapLeaf struct {
	Key   []byte      `json:"key"`
	Value []byte      `json:"value"`
	Path  []ProofStep `json:"path"`
}

// MapProof proves that Key is present in a committed map, or that it is absent.
// An absence proof carries the leaves adjacent to Key (either may be nil at the edges).
type MapProof struct {
	Key   []byte   `json:"key"`
	Size  uint64   `json:"size"`
	Root  []byte   `json:"root"`
	Entry *MapLeaf `json:"entry,omitempty"`
	Left  *MapLeaf `json:"left,omitempty"`
	Right *MapLeaf `json:"right,omitempty"`
}

// ProofBundle binds an anchored ledger block hash to the latest authorized ledger block.
type ProofBundle struct {
	LatestAuthorizedBlock BlockProof `json:"latest_authorized_block"`
	ToTable               MapProof   `json:"to_table"`
	ToBlockHeader         MapProof   `json:"to_block_header"`
}

// StateKey addresses a service table inside the ledger state.
func StateKey(serviceID, table uint16) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint16(key[:2], serviceID)
	binary.BigEndian.PutUint16(key[2:], table)
	return key
}

// HeightKey is the key of a height in the anchored blocks table.
func HeightKey(height uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, height)
}

const (
	// AnchoringServiceID is the ledger service id of the anchoring service.
	AnchoringServiceID uint16 = 3
	// AnchoredBlocksTable is the anchoring service table mapping anchored heights to block hashes.
	AnchoredBlocksTable uint16 = 0
)
