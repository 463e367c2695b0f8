package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// RedeemScript builds the threshold multisignature script over the config's anchoring keys,
// in config order, and its pay-to-script-hash address.
func RedeemScript(cfg model.AnchoringConfig) ([]byte, *btcutil.AddressScriptHash, error) {
	params, err := ChainParams(cfg.Network)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.AnchoringKeys) == 0 {
		return nil, nil, errors.New("anchoring config has no keys")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	pubKeys := make([]*btcutil.AddressPubKey, 0, len(cfg.AnchoringKeys))
	for i, key := range cfg.AnchoringKeys {
		pubKey, err := btcutil.NewAddressPubKey(key, params)
		if err != nil {
			return nil, nil, fmt.Errorf("anchoring key %d: %w", i, err)
		}
		pubKeys = append(pubKeys, pubKey)
	}

	script, err := txscript.MultiSigScript(pubKeys, cfg.Threshold())
	if err != nil {
		return nil, nil, fmt.Errorf("build multisig script: %w", err)
	}
	if len(script) > txscript.MaxScriptElementSize {
		return nil, nil, fmt.Errorf("redeem script of %d keys is %d bytes, limit %d",
			len(pubKeys), len(script), txscript.MaxScriptElementSize)
	}

	address, err := btcutil.NewAddressScriptHash(script, params)
	if err != nil {
		return nil, nil, fmt.Errorf("derive script hash address: %w", err)
	}
	return script, address, nil
}

// AnchoringScript returns the output script that deposits to the anchoring address of cfg.
func AnchoringScript(cfg model.AnchoringConfig) ([]byte, error) {
	_, address, err := RedeemScript(cfg)
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(address)
}
