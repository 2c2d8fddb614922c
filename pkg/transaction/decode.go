package transaction

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// DecodeAction parses the RLP encoding produced by RLPBytes.
//
// Kinds whose binary form does not carry a network id (pay, setRegularKey,
// custom) take networkID from the caller; changeAssetScheme carries its own.
func DecodeAction(data []byte, networkID primitives.NetworkID) (Transaction, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return decodeActionList(list, networkID)
}

// DecodeUnsigned parses the RLP encoding produced by Unsigned.RLPBytes.
func DecodeUnsigned(data []byte) (*Unsigned, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	if len(list) != 4 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "envelope expects [seq, fee, networkId, action]"}
	}

	seq, err := asUint(list[0], "seq")
	if err != nil {
		return nil, err
	}
	fee, err := asUint(list[1], "fee")
	if err != nil {
		return nil, err
	}
	networkID, err := asString(list[2], "networkId")
	if err != nil {
		return nil, err
	}
	action, ok := list[3].([]interface{})
	if !ok {
		return nil, &DecodeError{Code: ErrFieldType, Message: "action must be a list"}
	}

	tx, err := decodeActionList(action, primitives.NetworkID(networkID))
	if err != nil {
		return nil, err
	}
	if err := checkEnvelopeNetwork(primitives.NetworkID(networkID), tx); err != nil {
		return nil, err
	}
	return &Unsigned{Seq: seq, Fee: primitives.U64(fee), Action: tx}, nil
}

// checkEnvelopeNetwork rejects an envelope whose networkId disagrees with the
// one carried by its action.
func checkEnvelopeNetwork(networkID primitives.NetworkID, tx Transaction) error {
	if tx.NetworkID() != networkID {
		return &DecodeError{
			Code:    ErrInvalidField,
			Message: "envelope network " + networkID.String() + " does not match " + tx.Type() + " network " + tx.NetworkID().String(),
		}
	}
	return nil
}

func decodeList(data []byte) ([]interface{}, error) {
	var v interface{}
	if err := rlp.DecodeBytes(data, &v); err != nil {
		return nil, &DecodeError{Code: ErrMalformedRLP, Message: "invalid rlp", Cause: err}
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, &DecodeError{Code: ErrFieldType, Message: "top level item must be a list"}
	}
	return list, nil
}

// decodeActionList dispatches on the leading tag. Every registered tag has a
// case; anything else is rejected.
func decodeActionList(list []interface{}, networkID primitives.NetworkID) (Transaction, error) {
	if len(list) == 0 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "action list is empty"}
	}
	raw, err := asUint(list[0], "tag")
	if err != nil {
		return nil, err
	}
	if raw > 0xff {
		return nil, &DecodeError{Code: ErrUnknownTag, Message: "tag out of range"}
	}

	fields := list[1:]
	switch tag := Tag(raw); tag {
	case TagPay:
		return decodePay(fields, networkID)
	case TagSetRegularKey:
		return decodeSetRegularKey(fields, networkID)
	case TagChangeAssetScheme:
		return decodeChangeAssetScheme(fields)
	case TagCustom:
		return decodeCustom(fields, networkID)
	default:
		return nil, &DecodeError{Code: ErrUnknownTag, Message: "unregistered tag " + tag.String()}
	}
}

// built normalizes a constructor result for the decoders: constructor
// failures on decoded input become DecodeErrors, and a failed constructor
// never leaks a typed nil through the Transaction interface.
func built(tx Transaction, err error) (Transaction, error) {
	if err != nil {
		return nil, &DecodeError{Code: ErrInvalidField, Message: "decoded fields rejected", Cause: err}
	}
	return tx, nil
}

func asBytes(item interface{}, field string) ([]byte, error) {
	b, ok := item.([]byte)
	if !ok {
		return nil, &DecodeError{Code: ErrFieldType, Message: field + " must be a byte string"}
	}
	return b, nil
}

func asString(item interface{}, field string) (string, error) {
	b, err := asBytes(item, field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func asStrings(item interface{}, field string) ([]string, error) {
	list, ok := item.([]interface{})
	if !ok {
		return nil, &DecodeError{Code: ErrFieldType, Message: field + " must be a list"}
	}
	out := make([]string, len(list))
	for i, v := range list {
		s, err := asString(v, field)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// asUint reads a canonical RLP integer: big-endian, no leading zeros, at
// most 8 bytes.
func asUint(item interface{}, field string) (uint64, error) {
	b, err := asBytes(item, field)
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, &DecodeError{Code: ErrInvalidField, Message: field + " overflows uint64"}
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, &DecodeError{Code: ErrInvalidField, Message: field + " has leading zero bytes"}
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}
