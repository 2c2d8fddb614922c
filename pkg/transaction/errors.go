// Package transaction error types.
//
// Constructors report malformed input as *ValidationError and never return
// a partially built value. Encoding has no error path. Decoders, which
// consume untrusted bytes, report *DecodeError.
package transaction

import "fmt"

// ValidationError is returned when a transaction cannot be constructed
// from the supplied parameters.
type ValidationError struct {
	Type    string // Transaction type name (e.g., "changeAssetScheme")
	Field   string // Offending logical field (e.g., "approver")
	Message string // Human-readable error message
	Cause   error  // Underlying error (if any)
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s.%s: %s: %v", e.Type, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s.%s: %s", e.Type, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// DecodeError is returned when RLP or JSON input does not describe a valid
// transaction.
type DecodeError struct {
	Code    string // Error code (e.g., ErrMalformedRLP, ErrUnknownTag)
	Message string // Human-readable error message
	Cause   error  // Underlying error (if any)
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error [%s]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error [%s]: %s", e.Code, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Error codes used by the decoders.
const (
	ErrMalformedRLP  = "MALFORMED_RLP"  // Input is not well-formed RLP
	ErrMalformedJSON = "MALFORMED_JSON" // Input is not well-formed JSON
	ErrUnknownTag    = "UNKNOWN_TAG"    // Tag is not in the registry
	ErrUnknownType   = "UNKNOWN_TYPE"   // Type name is not in the registry
	ErrFieldCount    = "FIELD_COUNT"    // Wrong number of list items
	ErrFieldType     = "FIELD_TYPE"     // A list item has the wrong shape
	ErrInvalidField  = "INVALID_FIELD"  // A field failed constructor validation
)
