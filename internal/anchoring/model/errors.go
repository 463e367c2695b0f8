package model

import "errors"

var (
	// ErrUnknownValidatorID is returned for a validator id outside the active key set.
	ErrUnknownValidatorID = errors.New("unknown validator id")
	// ErrHeightOutOfRange is returned for a ledger height above the latest committed block.
	ErrHeightOutOfRange = errors.New("height out of range")
	// ErrProtocolViolation is returned when validators agreed on a transaction the protocol does not accept.
	ErrProtocolViolation = errors.New("anchoring protocol violation")
	// ErrNonIncreasingHeight is returned when an anchor is appended at or below the chain tip.
	ErrNonIncreasingHeight = errors.New("anchor height does not extend the chain")
	// ErrPayloadAboveEntry is returned when an anchor commits to a block above its own chain height.
	ErrPayloadAboveEntry = errors.New("anchor payload height exceeds entry height")
	// ErrDuplicateAnchoringKey is returned for a config that lists the same key twice.
	ErrDuplicateAnchoringKey = errors.New("duplicate anchoring key")
	// ErrNotAnchoringTx is returned when a non-anchoring transaction is used as an anchor.
	ErrNotAnchoringTx = errors.New("not an anchoring transaction")
)

// ProtocolViolationAdvisory is the fixed message shown to API clients on ErrProtocolViolation.
const ProtocolViolationAdvisory = "anchoring state is inconsistent, the validator set needs operator attention"
