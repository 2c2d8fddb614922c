// Package primitives implements the addressing types consumed by the
// transaction encoder: fixed-size hashes, quantities, network identifiers
// and bech32 platform addresses.
//
// All types are plain values. Parsing validates and normalizes external
// input once; every accessor after that is a pure function of the value.
//
// Hex representation follows the CodeChain SDK conventions:
//
//	H160  20 bytes  account identifiers (blake160 of a public key)
//	H256  32 bytes  asset types, transaction hashes, private keys
//	H512  64 bytes  secp256k1 public keys without the 0x04 prefix
package primitives

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Sizes of the fixed hash types in bytes.
const (
	H160Length = 20
	H256Length = 32
	H512Length = 64
)

// H160 is a 160-bit identifier, used for account ids.
type H160 [H160Length]byte

// H256 is a 256-bit identifier, used for asset types and hashes.
type H256 [H256Length]byte

// H512 is a 512-bit identifier, used for public keys.
type H512 [H512Length]byte

// decodeFixed parses hex (with or without 0x) into dst, requiring an exact length.
func decodeFixed(s string, dst []byte) error {
	in := s
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		in = "0x" + s
	}

	raw, err := hexutil.Decode(in)
	if err != nil {
		return &AddressError{Code: ErrInvalidHex, Input: s, Message: "not a hex string", Cause: err}
	}
	if len(raw) != len(dst) {
		return &AddressError{
			Code:    ErrInvalidLength,
			Input:   s,
			Message: fmt.Sprintf("expected %d bytes, got %d", len(dst), len(raw)),
		}
	}
	copy(dst, raw)
	return nil
}

// ParseH160 parses a 20-byte hex identifier.
func ParseH160(s string) (H160, error) {
	var h H160
	err := decodeFixed(s, h[:])
	return h, err
}

// ParseH256 parses a 32-byte hex identifier.
func ParseH256(s string) (H256, error) {
	var h H256
	err := decodeFixed(s, h[:])
	return h, err
}

// ParseH512 parses a 64-byte hex identifier.
func ParseH512(s string) (H512, error) {
	var h H512
	err := decodeFixed(s, h[:])
	return h, err
}

// Hex returns the 0x-prefixed lowercase hex form.
func (h H160) Hex() string { return hexutil.Encode(h[:]) }

// Hex returns the 0x-prefixed lowercase hex form.
func (h H256) Hex() string { return hexutil.Encode(h[:]) }

// Hex returns the 0x-prefixed lowercase hex form.
func (h H512) Hex() string { return hexutil.Encode(h[:]) }

func (h H160) String() string { return h.Hex() }
func (h H256) String() string { return h.Hex() }
func (h H512) String() string { return h.Hex() }

// ToEncodeObject returns the bytes placed in an RLP list.
func (h H160) ToEncodeObject() []byte { return bytes.Clone(h[:]) }

// ToEncodeObject returns the bytes placed in an RLP list.
func (h H256) ToEncodeObject() []byte { return bytes.Clone(h[:]) }

// ToEncodeObject returns the bytes placed in an RLP list.
func (h H512) ToEncodeObject() []byte { return bytes.Clone(h[:]) }

// ToJSON returns the canonical identifier string used in JSON payloads.
func (h H256) ToJSON() string { return h.Hex() }

// ToJSON returns the canonical identifier string used in JSON payloads.
func (h H512) ToJSON() string { return h.Hex() }

// IsZero reports whether every byte is zero.
func (h H256) IsZero() bool { return h == H256{} }

func (h H160) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }
func (h H256) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }
func (h H512) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

func (h *H160) UnmarshalText(text []byte) error {
	v, err := ParseH160(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h *H256) UnmarshalText(text []byte) error {
	v, err := ParseH256(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h *H512) UnmarshalText(text []byte) error {
	v, err := ParseH512(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// H160FromBytes copies b into an H160, failing unless len(b) == 20.
func H160FromBytes(b []byte) (H160, error) {
	var h H160
	if len(b) != H160Length {
		return h, &AddressError{Code: ErrInvalidLength, Input: hexutil.Encode(b), Message: "expected 20 bytes"}
	}
	copy(h[:], b)
	return h, nil
}

// H256FromBytes copies b into an H256, failing unless len(b) == 32.
func H256FromBytes(b []byte) (H256, error) {
	var h H256
	if len(b) != H256Length {
		return h, &AddressError{Code: ErrInvalidLength, Input: hexutil.Encode(b), Message: "expected 32 bytes"}
	}
	copy(h[:], b)
	return h, nil
}

// H512FromBytes copies b into an H512, failing unless len(b) == 64.
func H512FromBytes(b []byte) (H512, error) {
	var h H512
	if len(b) != H512Length {
		return h, &AddressError{Code: ErrInvalidLength, Input: hexutil.Encode(b), Message: "expected 64 bytes"}
	}
	copy(h[:], b)
	return h, nil
}
