package transaction

import (
	"encoding/json"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// ParseActionJSON builds a transaction from the mapping produced by
// ActionToJSON, choosing the kind by type name. networkID is used by kinds
// whose JSON does not carry one.
func ParseActionJSON(networkID primitives.NetworkID, typeName string, data []byte) (Transaction, error) {
	switch typeName {
	case TypePay:
		var j payJSON
		if err := unmarshalAction(data, &j); err != nil {
			return nil, err
		}
		return j.build(networkID)
	case TypeSetRegularKey:
		var j setRegularKeyJSON
		if err := unmarshalAction(data, &j); err != nil {
			return nil, err
		}
		return j.build(networkID)
	case TypeChangeAssetScheme:
		var j changeAssetSchemeJSON
		if err := unmarshalAction(data, &j); err != nil {
			return nil, err
		}
		return j.build()
	case TypeCustom:
		var j customJSON
		if err := unmarshalAction(data, &j); err != nil {
			return nil, err
		}
		return j.build(networkID)
	default:
		return nil, &DecodeError{Code: ErrUnknownType, Message: "unregistered type " + typeName}
	}
}

func unmarshalAction(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Code: ErrMalformedJSON, Message: "invalid action json", Cause: err}
	}
	return nil
}

// MarshalJSON renders the mapping returned by ToJSON.
func (u *Unsigned) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToJSON())
}

type unsignedJSON struct {
	Action    json.RawMessage      `json:"action"`
	Seq       uint64               `json:"seq"`
	Fee       primitives.U64       `json:"fee"`
	NetworkID primitives.NetworkID `json:"networkId"`
}

// UnmarshalJSON parses the envelope mapping and dispatches the action on
// its "type" member.
func (u *Unsigned) UnmarshalJSON(data []byte) error {
	var j unsignedJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return &DecodeError{Code: ErrMalformedJSON, Message: "invalid transaction json", Cause: err}
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(j.Action, &head); err != nil {
		return &DecodeError{Code: ErrMalformedJSON, Message: "invalid action json", Cause: err}
	}

	action, err := ParseActionJSON(j.NetworkID, head.Type, j.Action)
	if err != nil {
		return err
	}
	if err := checkEnvelopeNetwork(j.NetworkID, action); err != nil {
		return err
	}

	*u = Unsigned{Seq: j.Seq, Fee: j.Fee, Action: action}
	return nil
}
