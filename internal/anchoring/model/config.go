package model

import "fmt"

// AnchoringConfig is the validator key set that controls the anchoring address.
type AnchoringConfig struct {
	Network Network
	// AnchoringKeys are compressed secp256k1 public keys; the slice index is the validator id.
	AnchoringKeys [][]byte
	// ActualFrom is the ledger height the config became (or becomes) active at.
	ActualFrom uint64
}

// Threshold returns the number of validators that constitutes a Byzantine quorum for this config.
func (c AnchoringConfig) Threshold() int {
	return QuorumThreshold(len(c.AnchoringKeys))
}

// ValidatorKey returns the anchoring key of the validator with the given id.
func (c AnchoringConfig) ValidatorKey(id uint32) ([]byte, bool) {
	if uint64(id) >= uint64(len(c.AnchoringKeys)) {
		return nil, false
	}
	return c.AnchoringKeys[id], true
}

// QuorumThreshold returns floor(2n/3)+1, the smallest count strictly above two thirds of n.
func QuorumThreshold(n int) int {
	if n <= 0 {
		return 0
	}
	return n*2/3 + 1
}

// Validate rejects configs in which one key would vote for several validator ids.
func (c AnchoringConfig) Validate() error {
	seen := make(map[string]int, len(c.AnchoringKeys))
	for id, key := range c.AnchoringKeys {
		if first, ok := seen[string(key)]; ok {
			return fmt.Errorf("validators %d and %d share a key: %w", first, id, ErrDuplicateAnchoringKey)
		}
		seen[string(key)] = id
	}
	return nil
}
