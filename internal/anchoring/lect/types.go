package lect

import "github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Classifier interface {
		ClassifyFor(raw model.RawTx, anchoringScript []byte) model.TxKind
	}
	LectLog interface {
		LatestLect(validatorKey []byte) (model.LectRecord, bool)
	}
)
