// Package chainindex indexes the chain of anchoring transactions committed by the ledger.
package chainindex

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Index keeps anchor chain entries in strictly increasing height order.
type Index struct {
	entries []model.AnchorChainEntry
}

// New builds an index from entries, validating them as if appended one by one.
func New(entries ...model.AnchorChainEntry) (*Index, error) {
	idx := &Index{entries: make([]model.AnchorChainEntry, 0, len(entries))}
	for _, entry := range entries {
		if err := idx.Append(entry); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Append adds a newly committed anchor above the current chain tip.
func (i *Index) Append(entry model.AnchorChainEntry) error {
	if entry.Tx.Kind != model.KindAnchoring || entry.Tx.Payload == nil {
		return fmt.Errorf("anchor at height %d is %s: %w", entry.Height, entry.Tx.Kind, model.ErrNotAnchoringTx)
	}
	if last, ok := i.Last(); ok && entry.Height <= last.Height {
		return fmt.Errorf("anchor at height %d, chain tip %d: %w", entry.Height, last.Height, model.ErrNonIncreasingHeight)
	}
	if entry.Tx.Payload.Height > entry.Height {
		return fmt.Errorf("anchor at height %d commits to height %d: %w",
			entry.Height, entry.Tx.Payload.Height, model.ErrPayloadAboveEntry)
	}
	i.entries = append(i.entries, entry)
	return nil
}

// Nearest returns the entry with the smallest height at or above minHeight.
func (i *Index) Nearest(minHeight uint64) (model.AnchorChainEntry, bool) {
	pos := sort.Search(len(i.entries), func(n int) bool {
		return i.entries[n].Height >= minHeight
	})
	if pos == len(i.entries) {
		return model.AnchorChainEntry{}, false
	}
	return i.entries[pos], true
}

// Last returns the chain tip.
func (i *Index) Last() (model.AnchorChainEntry, bool) {
	if len(i.entries) == 0 {
		return model.AnchorChainEntry{}, false
	}
	return i.entries[len(i.entries)-1], true
}

// Len returns the number of anchors in the chain.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns a copy of the chain in height order.
func (i *Index) Entries() []model.AnchorChainEntry {
	return append([]model.AnchorChainEntry(nil), i.entries...)
}

// Clone returns an independent copy of the index.
func (i *Index) Clone() *Index {
	return &Index{entries: append([]model.AnchorChainEntry(nil), i.entries...)}
}

// View is a read-only handle on an Index.
type View struct {
	idx *Index
}

// View returns a read-only handle sharing the index storage.
func (i *Index) View() View {
	return View{idx: i}
}

// Nearest returns the entry with the smallest height at or above minHeight.
func (v View) Nearest(minHeight uint64) (model.AnchorChainEntry, bool) {
	if v.idx == nil {
		return model.AnchorChainEntry{}, false
	}
	return v.idx.Nearest(minHeight)
}

// Last returns the chain tip.
func (v View) Last() (model.AnchorChainEntry, bool) {
	if v.idx == nil {
		return model.AnchorChainEntry{}, false
	}
	return v.idx.Last()
}

// Len returns the number of anchors in the chain.
func (v View) Len() int {
	if v.idx == nil {
		return 0
	}
	return v.idx.Len()
}

// Entries returns a copy of the chain in height order.
func (v View) Entries() []model.AnchorChainEntry {
	if v.idx == nil {
		return nil
	}
	return v.idx.Entries()
}
