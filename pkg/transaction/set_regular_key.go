package transaction

import (
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// SetRegularKeyParams are the caller-supplied fields of a SetRegularKey.
type SetRegularKeyParams struct {
	NetworkID primitives.NetworkID
	Key       primitives.H512 // secp256k1 public key, uncompressed without prefix
}

// SetRegularKey registers a secondary signing key for the sender's account.
type SetRegularKey struct {
	networkID primitives.NetworkID
	key       primitives.H512
}

// NewSetRegularKey rejects keys that are not points on secp256k1.
func NewSetRegularKey(params SetRegularKeyParams) (*SetRegularKey, error) {
	if err := primitives.ValidatePublic(params.Key); err != nil {
		return nil, &ValidationError{Type: TypeSetRegularKey, Field: "key", Message: "invalid public key", Cause: err}
	}
	return &SetRegularKey{networkID: params.NetworkID, key: params.Key}, nil
}

func (t *SetRegularKey) isTransaction() {}

func (t *SetRegularKey) NetworkID() primitives.NetworkID { return t.networkID }
func (t *SetRegularKey) Tag() Tag                        { return TagSetRegularKey }
func (t *SetRegularKey) Type() string                    { return TypeSetRegularKey }
func (t *SetRegularKey) Key() primitives.H512            { return t.key }

// ActionToEncodeObject returns [0x03, key].
func (t *SetRegularKey) ActionToEncodeObject() []interface{} {
	return []interface{}{uint64(TagSetRegularKey), t.key.ToEncodeObject()}
}

func (t *SetRegularKey) ActionToJSON() map[string]interface{} {
	return map[string]interface{}{"key": t.key.ToJSON()}
}

type setRegularKeyJSON struct {
	Key primitives.H512 `json:"key"`
}

func (j setRegularKeyJSON) build(networkID primitives.NetworkID) (Transaction, error) {
	tx, err := NewSetRegularKey(SetRegularKeyParams{NetworkID: networkID, Key: j.Key})
	return built(tx, err)
}

func decodeSetRegularKey(fields []interface{}, networkID primitives.NetworkID) (Transaction, error) {
	if len(fields) != 1 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "setRegularKey expects 1 field after the tag"}
	}

	raw, err := asBytes(fields[0], "key")
	if err != nil {
		return nil, err
	}
	key, err := primitives.H512FromBytes(raw)
	if err != nil {
		return nil, &DecodeError{Code: ErrInvalidField, Message: "key", Cause: err}
	}

	tx, err := NewSetRegularKey(SetRegularKeyParams{NetworkID: networkID, Key: key})
	return built(tx, err)
}
