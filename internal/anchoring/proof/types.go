package proof

import "github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Snapshot interface {
		LatestHeight() (uint64, bool)
		BlockAndPrecommits(height uint64) (model.BlockProof, error)
		StateProof(serviceID, table uint16) model.MapProof
		TableProof(serviceID, table uint16, key []byte) (model.MapProof, error)
	}
)
