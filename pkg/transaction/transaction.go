// Package transaction implements the canonical dual encoding of platform
// transactions.
//
// Every transaction kind produces two representations from the same
// in-memory fields:
//
//   - an ordered list (ActionToEncodeObject) whose RLP encoding is the
//     hashing/signing input and the wire form, and
//   - a JSON mapping (ActionToJSON) keyed by logical field name, used by
//     RPC clients.
//
// The list always starts with the kind's numeric Tag. Field order after the
// tag is part of the protocol:
//
//	pay               [0x02, receiver.accountId, quantity]
//	setRegularKey     [0x03, key]
//	changeAssetScheme [0x15, networkId, assetType, metadata, [approver?], [administrator?], approvals]
//	custom            [0xff, handlerId, bytes]
//
// Values are validated once by their constructors and are immutable after
// that; encoding is a pure function with no error path and is safe for
// concurrent use.
package transaction

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// Transaction is implemented by every transaction kind in this package.
// The set is closed: the unexported method keeps other packages from adding
// kinds that bypass the tag registry.
type Transaction interface {
	// NetworkID returns the chain the transaction is meant for.
	NetworkID() primitives.NetworkID
	// Tag returns the numeric discriminator that heads the binary encoding.
	Tag() Tag
	// Type returns the lowercase-initial type name used in JSON.
	Type() string
	// ActionToEncodeObject returns the ordered field list, tag first.
	ActionToEncodeObject() []interface{}
	// ActionToJSON returns the field mapping keyed by logical field name.
	ActionToJSON() map[string]interface{}

	isTransaction()
}

// RLPBytes returns the canonical binary encoding of a transaction's action.
func RLPBytes(tx Transaction) []byte {
	return mustEncode(tx.ActionToEncodeObject())
}

// mustEncode RLP-encodes an encode object. Encode objects only ever hold
// uint64, string, []byte, []string and nested []interface{}, all of which
// the RLP encoder accepts, so a failure here is a programming error.
func mustEncode(obj []interface{}) []byte {
	out, err := rlp.EncodeToBytes(obj)
	if err != nil {
		panic("transaction: unencodable field: " + err.Error())
	}
	return out
}

// Unsigned wraps an action with the envelope fields that every transaction
// carries on the wire.
type Unsigned struct {
	Seq    uint64         // Account sequence number
	Fee    primitives.U64 // Fee paid to the block author
	Action Transaction    // The action being performed
}

// NetworkID returns the action's network.
func (u *Unsigned) NetworkID() primitives.NetworkID {
	return u.Action.NetworkID()
}

// EncodeObject returns [seq, fee, networkId, action].
func (u *Unsigned) EncodeObject() []interface{} {
	return []interface{}{
		u.Seq,
		u.Fee.ToEncodeObject(),
		u.Action.NetworkID().ToEncodeObject(),
		u.Action.ActionToEncodeObject(),
	}
}

// RLPBytes returns the canonical binary encoding of the envelope.
func (u *Unsigned) RLPBytes() []byte {
	return mustEncode(u.EncodeObject())
}

// Hash returns blake256 of RLPBytes; this is the value that gets signed.
func (u *Unsigned) Hash() primitives.H256 {
	return primitives.Blake256(u.RLPBytes())
}

// ToJSON returns the envelope mapping with the action's type name folded
// into the action object.
func (u *Unsigned) ToJSON() map[string]interface{} {
	action := u.Action.ActionToJSON()
	action["type"] = u.Action.Type()

	return map[string]interface{}{
		"action":    action,
		"seq":       u.Seq,
		"fee":       u.Fee.ToJSON(),
		"networkId": u.Action.NetworkID().String(),
	}
}
