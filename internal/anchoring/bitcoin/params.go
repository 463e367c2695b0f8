// Package bitcoin adapts btcd to the anchoring protocol: transaction classification,
// payload encoding and multisignature address derivation.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

var (
	chainParams = map[model.Network]*chaincfg.Params{
		model.Mainnet: &chaincfg.MainNetParams,
		model.Testnet: &chaincfg.TestNet3Params,
		model.Regtest: &chaincfg.RegressionNetParams,
		"signet":      &chaincfg.SigNetParams,
	}
	networkAliases = map[model.Network]model.Network{
		"main":     model.Mainnet,
		"bitcoin":  model.Mainnet,
		"testnet3": model.Testnet,
	}
)

// ChainParams returns btcd parameters for the network name used in anchoring configs.
// Names are case-insensitive.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	name := model.Network(strings.ToLower(string(network)))
	if canonical, ok := networkAliases[name]; ok {
		name = canonical
	}
	params, ok := chainParams[name]
	if !ok {
		return nil, fmt.Errorf("unsupported network %q", network)
	}
	return params, nil
}
