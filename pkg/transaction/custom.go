package transaction

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// CustomParams are the caller-supplied fields of a Custom.
type CustomParams struct {
	NetworkID primitives.NetworkID
	HandlerID primitives.U64 // Id of the custom action handler on the node
	Bytes     []byte         // Handler-specific payload, opaque here
}

// Custom carries an opaque payload to a node-side handler.
type Custom struct {
	networkID primitives.NetworkID
	handlerID primitives.U64
	bytes     []byte
}

// NewCustom copies the payload; there is nothing to validate.
func NewCustom(params CustomParams) *Custom {
	return &Custom{
		networkID: params.NetworkID,
		handlerID: params.HandlerID,
		bytes:     bytes.Clone(params.Bytes),
	}
}

func (t *Custom) isTransaction() {}

func (t *Custom) NetworkID() primitives.NetworkID { return t.networkID }
func (t *Custom) Tag() Tag                        { return TagCustom }
func (t *Custom) Type() string                    { return TypeCustom }
func (t *Custom) HandlerID() primitives.U64       { return t.handlerID }
func (t *Custom) Bytes() []byte                   { return bytes.Clone(t.bytes) }

// ActionToEncodeObject returns [0xff, handlerId, bytes].
func (t *Custom) ActionToEncodeObject() []interface{} {
	return []interface{}{uint64(TagCustom), t.handlerID.ToEncodeObject(), t.Bytes()}
}

func (t *Custom) ActionToJSON() map[string]interface{} {
	return map[string]interface{}{
		"handlerId": t.handlerID.ToJSON(),
		"bytes":     hexutil.Encode(t.bytes),
	}
}

type customJSON struct {
	HandlerID primitives.U64 `json:"handlerId"`
	Bytes     hexutil.Bytes  `json:"bytes"`
}

func (j customJSON) build(networkID primitives.NetworkID) (Transaction, error) {
	return NewCustom(CustomParams{NetworkID: networkID, HandlerID: j.HandlerID, Bytes: j.Bytes}), nil
}

func decodeCustom(fields []interface{}, networkID primitives.NetworkID) (Transaction, error) {
	if len(fields) != 2 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "custom expects 2 fields after the tag"}
	}

	handlerID, err := asUint(fields[0], "handlerId")
	if err != nil {
		return nil, err
	}
	payload, err := asBytes(fields[1], "bytes")
	if err != nil {
		return nil, err
	}

	return NewCustom(CustomParams{NetworkID: networkID, HandlerID: primitives.U64(handlerID), Bytes: payload}), nil
}
