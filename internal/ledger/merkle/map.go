// Package merkle commits sorted key/value maps with Bitcoin-style Merkle trees and proves
// presence or absence of keys in them.
package merkle

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	merkletools "github.com/chainpoint/merkletools-go"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Map is an immutable committed map. It is safe for concurrent reads.
type Map struct {
	keys   [][]byte
	values [][]byte
	tree   merkletools.MerkleTree
}

// NewMap commits entries keyed by the raw key bytes.
func NewMap(entries map[string][]byte) *Map {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := &Map{
		keys:   make([][]byte, 0, len(keys)),
		values: make([][]byte, 0, len(keys)),
	}
	leaves := make([][]byte, 0, len(keys))
	for _, key := range keys {
		value := append([]byte(nil), entries[key]...)
		m.keys = append(m.keys, []byte(key))
		m.values = append(m.values, value)
		leaves = append(leaves, LeafHash([]byte(key), value))
	}
	m.tree.AddLeaves(leaves)
	m.tree.MakeBTCTree()
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Commitment returns the hash that binds the map size and Merkle root.
func (m *Map) Commitment() chainhash.Hash {
	return Commitment(uint64(len(m.keys)), m.tree.GetMerkleRoot())
}

// Prove returns a presence proof for key, or an absence proof built from its neighbours.
func (m *Map) Prove(key []byte) model.MapProof {
	proof := model.MapProof{
		Key:  append([]byte(nil), key...),
		Size: uint64(len(m.keys)),
		Root: append([]byte(nil), m.tree.GetMerkleRoot()...),
	}

	pos, found := m.search(key)
	if found {
		proof.Entry = m.leaf(pos)
		return proof
	}
	if pos > 0 {
		proof.Left = m.leaf(pos - 1)
	}
	if pos < len(m.keys) {
		proof.Right = m.leaf(pos)
	}
	return proof
}

func (m *Map) search(key []byte) (int, bool) {
	pos := sort.Search(len(m.keys), func(i int) bool {
		return bytes.Compare(m.keys[i], key) >= 0
	})
	return pos, pos < len(m.keys) && bytes.Equal(m.keys[pos], key)
}

func (m *Map) leaf(pos int) *model.MapLeaf {
	steps := m.tree.GetProof(pos)
	path := make([]model.ProofStep, 0, len(steps))
	for _, step := range steps {
		path = append(path, model.ProofStep{Left: step.Left, Value: append([]byte(nil), step.Value...)})
	}
	return &model.MapLeaf{
		Key:   append([]byte(nil), m.keys[pos]...),
		Value: append([]byte(nil), m.values[pos]...),
		Path:  path,
	}
}

// LeafHash hashes a key/value pair into a tree leaf.
func LeafHash(key, value []byte) []byte {
	buf := make([]byte, 0, 5+len(key)+len(value))
	buf = append(buf, 0x00)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(key)))
	buf = append(buf, key...)
	buf = append(buf, value...)
	return chainhash.HashB(buf)
}

// Commitment binds a map size to its Merkle root.
func Commitment(size uint64, root []byte) chainhash.Hash {
	buf := binary.BigEndian.AppendUint64(nil, size)
	return chainhash.HashH(append(buf, root...))
}

// Verify checks proof against a map commitment. It returns the proven value and true for a
// presence proof, or nil and false for a valid absence proof.
func Verify(proof model.MapProof, commitment chainhash.Hash) ([]byte, bool, error) {
	if Commitment(proof.Size, proof.Root) != commitment {
		return nil, false, errors.New("proof root does not match commitment")
	}

	if proof.Entry != nil {
		if proof.Left != nil || proof.Right != nil {
			return nil, false, errors.New("presence proof with neighbour leaves")
		}
		if !bytes.Equal(proof.Entry.Key, proof.Key) {
			return nil, false, fmt.Errorf("proof entry key %x, want %x", proof.Entry.Key, proof.Key)
		}
		if _, err := verifyLeaf(proof.Size, proof.Root, *proof.Entry); err != nil {
			return nil, false, err
		}
		return proof.Entry.Value, true, nil
	}

	if err := verifyAbsence(proof); err != nil {
		return nil, false, err
	}
	return nil, false, nil
}

func verifyAbsence(proof model.MapProof) error {
	if proof.Size == 0 {
		if proof.Left != nil || proof.Right != nil || len(proof.Root) != 0 {
			return errors.New("absence proof for empty map carries leaves")
		}
		return nil
	}
	if proof.Left == nil && proof.Right == nil {
		return errors.New("absence proof without neighbour leaves")
	}

	var left, right uint64
	var err error
	if proof.Left != nil {
		if bytes.Compare(proof.Left.Key, proof.Key) >= 0 {
			return errors.New("left neighbour is not below the key")
		}
		if left, err = verifyLeaf(proof.Size, proof.Root, *proof.Left); err != nil {
			return fmt.Errorf("left neighbour: %w", err)
		}
	}
	if proof.Right != nil {
		if bytes.Compare(proof.Right.Key, proof.Key) <= 0 {
			return errors.New("right neighbour is not above the key")
		}
		if right, err = verifyLeaf(proof.Size, proof.Root, *proof.Right); err != nil {
			return fmt.Errorf("right neighbour: %w", err)
		}
	}

	switch {
	case proof.Left != nil && proof.Right != nil:
		if right != left+1 {
			return fmt.Errorf("neighbours at %d and %d are not adjacent", left, right)
		}
	case proof.Left != nil:
		if left != proof.Size-1 {
			return fmt.Errorf("left neighbour at %d is not the last of %d leaves", left, proof.Size)
		}
	default:
		if right != 0 {
			return fmt.Errorf("right neighbour at %d is not the first leaf", right)
		}
	}
	return nil
}

// verifyLeaf checks a leaf path and returns the leaf position encoded by it.
func verifyLeaf(size uint64, root []byte, leaf model.MapLeaf) (uint64, error) {
	if depth := treeDepth(size); len(leaf.Path) != depth {
		return 0, fmt.Errorf("path length %d, want %d for %d leaves", len(leaf.Path), depth, size)
	}

	var pos uint64
	steps := make([]merkletools.ProofStep, 0, len(leaf.Path))
	for level, step := range leaf.Path {
		if step.Left {
			pos |= 1 << uint(level)
		}
		steps = append(steps, merkletools.ProofStep{Left: step.Left, Value: step.Value})
	}
	if pos >= size {
		return 0, fmt.Errorf("leaf position %d outside %d leaves", pos, size)
	}
	if !merkletools.VerifyBTCProof(steps, LeafHash(leaf.Key, leaf.Value), root) {
		return 0, errors.New("leaf path does not lead to root")
	}
	return pos, nil
}

func treeDepth(size uint64) int {
	depth := 0
	for uint64(1)<<uint(depth) < size {
		depth++
	}
	return depth
}
