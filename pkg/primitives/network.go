package primitives

// NetworkID partitions distinct chains. The encoder passes it through
// untouched; addresses use it to build their bech32 prefix.
type NetworkID string

// Well-known network identifiers.
const (
	MainNet NetworkID = "cc" // CodeChain mainnet
	TestNet NetworkID = "tc" // CodeChain testnet
)

// ParseNetworkID validates a two-character lowercase alphanumeric identifier.
func ParseNetworkID(s string) (NetworkID, error) {
	if len(s) != 2 {
		return "", &AddressError{Code: ErrInvalidNetwork, Input: s, Message: "network id must be 2 characters"}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return "", &AddressError{Code: ErrInvalidNetwork, Input: s, Message: "network id must be lowercase alphanumeric"}
		}
	}
	return NetworkID(s), nil
}

func (n NetworkID) String() string { return string(n) }

// ToEncodeObject returns the value placed in an RLP list.
func (n NetworkID) ToEncodeObject() string { return string(n) }
