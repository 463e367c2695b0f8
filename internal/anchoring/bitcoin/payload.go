package bitcoin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Payload layout: magic | version | kind | height (u64 LE) | block hash | [prev tx chain].
const (
	payloadMagic   = "EXONUM"
	payloadVersion = byte(1)

	payloadKindRegular = byte(0)
	payloadKindRecover = byte(1)

	payloadHeaderSize  = len(payloadMagic) + 2
	regularPayloadSize = payloadHeaderSize + 8 + chainhash.HashSize
	recoverPayloadSize = regularPayloadSize + chainhash.HashSize
)

var errNotNullData = errors.New("script is not a null data script")

// EncodePayload serializes a ledger commitment into the data carried by an anchoring transaction.
func EncodePayload(p model.Payload) []byte {
	size := regularPayloadSize
	kind := payloadKindRegular
	if p.PrevTxChain != nil {
		size = recoverPayloadSize
		kind = payloadKindRecover
	}

	buf := make([]byte, 0, size)
	buf = append(buf, payloadMagic...)
	buf = append(buf, payloadVersion, kind)
	buf = binary.LittleEndian.AppendUint64(buf, p.Height)
	buf = append(buf, p.BlockHash[:]...)
	if p.PrevTxChain != nil {
		buf = append(buf, p.PrevTxChain[:]...)
	}
	return buf
}

// PayloadScript builds the null data output script carrying the payload.
func PayloadScript(p model.Payload) ([]byte, error) {
	return txscript.NullDataScript(EncodePayload(p))
}

// DecodePayload parses payload bytes produced by EncodePayload.
func DecodePayload(data []byte) (model.Payload, error) {
	if len(data) < payloadHeaderSize || !bytes.Equal(data[:len(payloadMagic)], []byte(payloadMagic)) {
		return model.Payload{}, errors.New("missing payload magic")
	}
	if version := data[len(payloadMagic)]; version != payloadVersion {
		return model.Payload{}, fmt.Errorf("unsupported payload version %d", version)
	}

	kind := data[len(payloadMagic)+1]
	switch {
	case kind == payloadKindRegular && len(data) == regularPayloadSize:
	case kind == payloadKindRecover && len(data) == recoverPayloadSize:
	default:
		return model.Payload{}, fmt.Errorf("payload kind %d with length %d", kind, len(data))
	}

	body := data[payloadHeaderSize:]
	p := model.Payload{Height: binary.LittleEndian.Uint64(body[:8])}
	copy(p.BlockHash[:], body[8:8+chainhash.HashSize])
	if kind == payloadKindRecover {
		var prev chainhash.Hash
		copy(prev[:], body[8+chainhash.HashSize:])
		p.PrevTxChain = &prev
	}
	return p, nil
}

func payloadFromScript(script []byte) (model.Payload, error) {
	if txscript.GetScriptClass(script) != txscript.NullDataTy {
		return model.Payload{}, errNotNullData
	}

	tokenizer := txscript.MakeScriptTokenizer(0, script)
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_RETURN {
		return model.Payload{}, errNotNullData
	}
	if !tokenizer.Next() {
		return model.Payload{}, errors.New("null data script without payload")
	}
	data := tokenizer.Data()
	if tokenizer.Next() || tokenizer.Err() != nil {
		return model.Payload{}, errors.New("unexpected data after payload")
	}
	return DecodePayload(data)
}
