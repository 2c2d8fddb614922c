package transaction

import (
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// Optional account identifiers share one translation in every kind:
//
//	absent   binary []            JSON null
//	present  binary [accountId]   JSON "<bech32 address>"

// ensureOptionalAddress normalizes an optional address at construction time.
func ensureOptionalAddress(typ, field string, s *string) (*primitives.PlatformAddress, error) {
	if s == nil {
		return nil, nil
	}
	addr, err := ensureAddress(typ, field, *s)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// ensureAddress normalizes an address. Any well-formed address is accepted
// and keeps its own network in the JSON form. Only the account id goes on
// the wire, so the binary decoders rebuild addresses on the transaction's
// network.
func ensureAddress(typ, field, s string) (primitives.PlatformAddress, error) {
	addr, err := primitives.EnsurePlatformAddress(s)
	if err != nil {
		return primitives.PlatformAddress{}, &ValidationError{Type: typ, Field: field, Message: "malformed address", Cause: err}
	}
	return addr, nil
}

func encodeOptionalAccount(addr *primitives.PlatformAddress) []interface{} {
	if addr == nil {
		return []interface{}{}
	}
	return []interface{}{addr.AccountID().ToEncodeObject()}
}

func jsonOptionalAccount(addr *primitives.PlatformAddress) interface{} {
	if addr == nil {
		return nil
	}
	return addr.String()
}

// decodeOptionalAccount reverses encodeOptionalAccount. The network is not
// on the wire, so the caller supplies it to rebuild the address.
func decodeOptionalAccount(item interface{}, networkID primitives.NetworkID) (*primitives.PlatformAddress, error) {
	list, ok := item.([]interface{})
	if !ok {
		return nil, &DecodeError{Code: ErrFieldType, Message: "optional account must be a list"}
	}

	switch len(list) {
	case 0:
		return nil, nil
	case 1:
		raw, err := asBytes(list[0], "account id")
		if err != nil {
			return nil, err
		}
		id, err := primitives.H160FromBytes(raw)
		if err != nil {
			return nil, &DecodeError{Code: ErrInvalidField, Message: "account id", Cause: err}
		}
		addr, err := primitives.PlatformAddressFromAccountID(id, networkID)
		if err != nil {
			return nil, &DecodeError{Code: ErrInvalidField, Message: "account network", Cause: err}
		}
		return &addr, nil
	default:
		return nil, &DecodeError{Code: ErrFieldCount, Message: "optional account holds more than one item"}
	}
}

// addressString returns a pointer to the string form, for round-tripping
// through constructors.
func addressString(addr *primitives.PlatformAddress) *string {
	if addr == nil {
		return nil
	}
	s := addr.String()
	return &s
}
