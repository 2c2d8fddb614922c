package primitives

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// U64 is an unsigned 64-bit quantity (fees, amounts, handler ids).
//
// RLP encodes it as the shortest big-endian byte string, so zero becomes
// the empty string. JSON uses the 0x-prefixed quantity form ("0x0", "0xa").
type U64 uint64

// ToEncodeObject returns the value placed in an RLP list.
func (u U64) ToEncodeObject() uint64 { return uint64(u) }

// ToJSON returns the 0x-prefixed quantity string.
func (u U64) ToJSON() string { return hexutil.EncodeUint64(uint64(u)) }

func (u U64) String() string { return strconv.FormatUint(uint64(u), 10) }

func (u U64) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToJSON())
}

// UnmarshalJSON accepts either a quantity string ("0x1f", "31") or a JSON number.
func (u *U64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseU64(s)
		if err != nil {
			return err
		}
		*u = v
		return nil
	}

	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return &AddressError{Code: ErrInvalidHex, Input: string(data), Message: "not an unsigned quantity", Cause: err}
	}
	*u = U64(v)
	return nil
}

// ParseU64 parses a 0x-prefixed hex quantity or a decimal string.
func ParseU64(s string) (U64, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, &AddressError{Code: ErrInvalidHex, Input: s, Message: "not a hex quantity", Cause: err}
		}
		return U64(v), nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &AddressError{Code: ErrInvalidHex, Input: s, Message: "not an unsigned quantity", Cause: err}
	}
	return U64(v), nil
}
