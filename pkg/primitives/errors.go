// Package primitives error types.
//
// Every parse or normalization failure in this package is reported as an
// *AddressError. Callers inspect the Code field (or use errors.As) to
// distinguish malformed hex from a bad checksum or an unknown network.
package primitives

import "fmt"

// AddressError is returned when an identifier, address or key cannot be
// validated or normalized from its external representation.
type AddressError struct {
	Code    string // Error code (e.g., ErrInvalidHex, ErrInvalidChecksum)
	Input   string // The offending input as given by the caller
	Message string // Human-readable error message
	Cause   error  // Underlying error (if any)
}

func (e *AddressError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("address error [%s] %q: %s: %v", e.Code, e.Input, e.Message, e.Cause)
	}
	return fmt.Sprintf("address error [%s] %q: %s", e.Code, e.Input, e.Message)
}

func (e *AddressError) Unwrap() error {
	return e.Cause
}

// Error codes used by the primitives package.
const (
	ErrInvalidHex      = "INVALID_HEX"      // Input is not valid hexadecimal
	ErrInvalidLength   = "INVALID_LENGTH"   // Decoded value has the wrong size
	ErrInvalidPrefix   = "INVALID_PREFIX"   // Bech32 human-readable part is malformed
	ErrInvalidChecksum = "INVALID_CHECKSUM" // Bech32 decoding failed
	ErrInvalidVersion  = "INVALID_VERSION"  // Unsupported address version byte
	ErrInvalidNetwork  = "INVALID_NETWORK"  // Network identifier is malformed
	ErrInvalidKey      = "INVALID_KEY"      // Key is not a valid secp256k1 key
)
