package primitives

import (
	"github.com/btcsuite/btcutil/bech32"
)

// PlatformAddressVersion is the only address version currently defined.
const PlatformAddressVersion byte = 1

// platformAddressSuffix is appended to the network id to form the bech32 HRP
// ("tc" -> "tcc", "cc" -> "ccc").
const platformAddressSuffix = "c"

// PlatformAddress is the canonical account identifier on a platform network.
//
// The string form is bech32 with human-readable part networkId+"c" over the
// payload version(1 byte) || accountId(20 bytes). A PlatformAddress value is
// always well formed; the only ways to build one are the constructors below.
type PlatformAddress struct {
	accountID H160
	networkID NetworkID
	value     string
}

// PlatformAddressFromAccountID builds the address of accountID on the given network.
func PlatformAddressFromAccountID(accountID H160, networkID NetworkID) (PlatformAddress, error) {
	if _, err := ParseNetworkID(string(networkID)); err != nil {
		return PlatformAddress{}, err
	}

	payload := make([]byte, 0, 1+H160Length)
	payload = append(payload, PlatformAddressVersion)
	payload = append(payload, accountID[:]...)

	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidChecksum, Input: accountID.Hex(), Message: "bit conversion failed", Cause: err}
	}
	value, err := bech32.Encode(string(networkID)+platformAddressSuffix, words)
	if err != nil {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidChecksum, Input: accountID.Hex(), Message: "bech32 encoding failed", Cause: err}
	}

	return PlatformAddress{accountID: accountID, networkID: networkID, value: value}, nil
}

// ParsePlatformAddress validates a bech32 platform address and returns it in
// canonical (lowercase) form.
func ParsePlatformAddress(s string) (PlatformAddress, error) {
	hrp, words, err := bech32.Decode(s)
	if err != nil {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidChecksum, Input: s, Message: "not a bech32 string", Cause: err}
	}
	if len(hrp) != 3 || hrp[2:] != platformAddressSuffix {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidPrefix, Input: s, Message: "unknown prefix " + hrp}
	}
	networkID, err := ParseNetworkID(hrp[:2])
	if err != nil {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidNetwork, Input: s, Message: "bad network in prefix", Cause: err}
	}

	payload, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidChecksum, Input: s, Message: "bit conversion failed", Cause: err}
	}
	if len(payload) != 1+H160Length {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidLength, Input: s, Message: "payload must be 21 bytes"}
	}
	if payload[0] != PlatformAddressVersion {
		return PlatformAddress{}, &AddressError{Code: ErrInvalidVersion, Input: s, Message: "unsupported address version"}
	}

	var accountID H160
	copy(accountID[:], payload[1:])
	return PlatformAddressFromAccountID(accountID, networkID)
}

// EnsurePlatformAddress normalizes an address given in its external string
// representation. It is the single validation entry point used by
// transaction constructors.
func EnsurePlatformAddress(s string) (PlatformAddress, error) {
	return ParsePlatformAddress(s)
}

// AccountID returns the 20-byte account identifier.
func (a PlatformAddress) AccountID() H160 { return a.accountID }

// NetworkID returns the network the address belongs to.
func (a PlatformAddress) NetworkID() NetworkID { return a.networkID }

// String returns the canonical bech32 form.
func (a PlatformAddress) String() string { return a.value }

// IsZero reports whether a is the zero value (never produced by the constructors).
func (a PlatformAddress) IsZero() bool { return a.value == "" }

func (a PlatformAddress) MarshalText() ([]byte, error) { return []byte(a.value), nil }

func (a *PlatformAddress) UnmarshalText(text []byte) error {
	v, err := ParsePlatformAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
