package config

import "github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	State interface {
		LatestHeight() (uint64, bool)
		ActualConfig() model.AnchoringConfig
		FollowingConfig() (model.AnchoringConfig, bool)
	}
)
