// Package validators implements the request validation pipeline.
//
// Every mutating endpoint declares an ordered rule table ([]Rule); the
// pipeline evaluates the rules front-to-back and stops at the first
// violation. The per-field order is fixed: presence, then semantic type,
// then range/shape constraints, then uniqueness against the store. Callers
// and tests depend on which code is returned for a multiply-invalid
// payload, so rule order inside a table is part of the endpoint contract.
package validators

import "context"

// Kind is the semantic type a rule expects for its field value.
// Payloads are decoded from JSON, so concrete Go types follow
// encoding/json conventions (string, float64, bool, nil).
type Kind int

const (
	// String expects a JSON string.
	String Kind = iota

	// Integer expects a JSON number with no fractional part.
	// The normalized value is an int.
	Integer

	// Number expects any JSON number. The normalized value is a float64.
	Number

	// Boolean expects a JSON boolean.
	Boolean

	// NullableNumber expects a JSON number or null.
	// The normalized value is a *float64, nil for null.
	NullableNumber
)

// codeSuffix returns the violation code suffix reported when a value does
// not match the expected kind. The suffix names the expected type, matching
// the wire contract ("username.string", "mass.number", ...).
func (k Kind) codeSuffix() string {
	switch k {
	case String:
		return CodeString
	case Boolean:
		return CodeBoolean
	default:
		return CodeNumber
	}
}

// LookupFunc checks a candidate value against the external store.
// It reports whether a conflicting record already exists. A non-nil error
// means the store itself failed; that error is fatal for the request and
// is never translated into a violation.
type LookupFunc func(ctx context.Context, value any) (bool, error)

// Rule describes the full validation contract for a single payload field.
// The zero value of the optional constraints (MinLen, Min, Unique) means
// "not checked".
type Rule struct {
	// Field is the payload key the rule applies to.
	Field string

	// Required reports whether the key must be present in the payload.
	// Note that a present key holding JSON null is not a Required
	// violation; null is then checked against Kind.
	Required bool

	// Kind is the semantic type the value must have.
	Kind Kind

	// MinLen is the minimum string length; violations report "<field>.short".
	// Only meaningful for String rules.
	MinLen int

	// Min is the minimum numeric value; violations report "<field>.low".
	// Only meaningful for Integer and Number rules.
	Min *float64

	// Unique, when set, is consulted after all local checks pass;
	// an existing record reports "<field>.duplicate".
	Unique LookupFunc
}

// Min is a convenience constructor for [Rule.Min].
func Min(v float64) *float64 {
	return &v
}
