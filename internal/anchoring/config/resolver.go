// Package config projects the anchoring configs stored in the ledger.
package config

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Resolver selects the anchoring config in force at the latest ledger height.
type Resolver struct{}

// NewResolver constructs a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Active returns the config in force. A scheduled config takes over once the ledger reaches
// its ActualFrom height, even if the rotation has not been written back yet.
func (r *Resolver) Active(state State) model.AnchoringConfig {
	if following, ok := r.scheduled(state); ok && reached(state, following) {
		return following
	}
	return state.ActualConfig()
}

// Following returns the config that will take over, only while a rotation is pending.
func (r *Resolver) Following(state State) (model.AnchoringConfig, bool) {
	following, ok := r.scheduled(state)
	if !ok || reached(state, following) {
		return model.AnchoringConfig{}, false
	}
	return following, true
}

// RedeemScript returns the multisig redeem script of cfg and its P2SH address.
func (r *Resolver) RedeemScript(cfg model.AnchoringConfig) ([]byte, *btcutil.AddressScriptHash, error) {
	script, addr, err := bitcoin.RedeemScript(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("redeem script: %w", err)
	}
	return script, addr, nil
}

// Address returns the encoded P2SH anchoring address of cfg.
func (r *Resolver) Address(cfg model.AnchoringConfig) (string, error) {
	_, addr, err := r.RedeemScript(cfg)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func (r *Resolver) scheduled(state State) (model.AnchoringConfig, bool) {
	following, ok := state.FollowingConfig()
	if !ok || following.ActualFrom <= state.ActualConfig().ActualFrom {
		return model.AnchoringConfig{}, false
	}
	return following, true
}

func reached(state State, cfg model.AnchoringConfig) bool {
	latest, ok := state.LatestHeight()
	return ok && latest >= cfg.ActualFrom
}
