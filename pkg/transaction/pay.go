package transaction

import (
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// PayParams are the caller-supplied fields of a Pay.
type PayParams struct {
	NetworkID primitives.NetworkID
	Receiver  string // Platform address of the receiver
	Quantity  primitives.U64
}

// Pay moves quantity from the signer to receiver.
type Pay struct {
	networkID primitives.NetworkID
	receiver  primitives.PlatformAddress
	quantity  primitives.U64
}

// NewPay validates the receiver and returns an immutable transaction.
func NewPay(params PayParams) (*Pay, error) {
	receiver, err := ensureAddress(TypePay, "receiver", params.Receiver)
	if err != nil {
		return nil, err
	}
	return &Pay{networkID: params.NetworkID, receiver: receiver, quantity: params.Quantity}, nil
}

func (t *Pay) isTransaction() {}

func (t *Pay) NetworkID() primitives.NetworkID      { return t.networkID }
func (t *Pay) Tag() Tag                             { return TagPay }
func (t *Pay) Type() string                         { return TypePay }
func (t *Pay) Receiver() primitives.PlatformAddress { return t.receiver }
func (t *Pay) Quantity() primitives.U64             { return t.quantity }

// ActionToEncodeObject returns [0x02, receiver.accountId, quantity].
func (t *Pay) ActionToEncodeObject() []interface{} {
	return []interface{}{
		uint64(TagPay),
		t.receiver.AccountID().ToEncodeObject(),
		t.quantity.ToEncodeObject(),
	}
}

func (t *Pay) ActionToJSON() map[string]interface{} {
	return map[string]interface{}{
		"receiver": t.receiver.String(),
		"quantity": t.quantity.ToJSON(),
	}
}

type payJSON struct {
	Receiver string         `json:"receiver"`
	Quantity primitives.U64 `json:"quantity"`
}

func (j payJSON) build(networkID primitives.NetworkID) (Transaction, error) {
	tx, err := NewPay(PayParams{NetworkID: networkID, Receiver: j.Receiver, Quantity: j.Quantity})
	return built(tx, err)
}

func decodePay(fields []interface{}, networkID primitives.NetworkID) (Transaction, error) {
	if len(fields) != 2 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "pay expects 2 fields after the tag"}
	}

	raw, err := asBytes(fields[0], "receiver")
	if err != nil {
		return nil, err
	}
	id, err := primitives.H160FromBytes(raw)
	if err != nil {
		return nil, &DecodeError{Code: ErrInvalidField, Message: "receiver", Cause: err}
	}
	receiver, err := primitives.PlatformAddressFromAccountID(id, networkID)
	if err != nil {
		return nil, &DecodeError{Code: ErrInvalidField, Message: "receiver network", Cause: err}
	}
	quantity, err := asUint(fields[1], "quantity")
	if err != nil {
		return nil, err
	}

	tx, err := NewPay(PayParams{NetworkID: networkID, Receiver: receiver.String(), Quantity: primitives.U64(quantity)})
	return built(tx, err)
}
