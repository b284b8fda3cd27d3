package validators

import "errors"

// Violation code suffixes. A full code is "<field>.<suffix>",
// e.g. "password.short".
const (
	CodeRequired  = "required"
	CodeString    = "string"
	CodeNumber    = "number"
	CodeBoolean   = "boolean"
	CodeShort     = "short"
	CodeLow       = "low"
	CodeDuplicate = "duplicate"
)

// Violation is the error returned when a payload breaks a validation rule.
// It identifies exactly one field and one rule; the pipeline never collects
// more than the first violation.
type Violation struct {
	// Field is the payload key that failed.
	Field string

	// Rule is the code suffix of the violated rule, one of the Code*
	// constants.
	Rule string
}

// NewViolation constructs a *Violation for the given field and rule suffix.
func NewViolation(field, rule string) *Violation {
	return &Violation{Field: field, Rule: rule}
}

// Duplicate constructs the "<field>.duplicate" violation. It is exported so
// that callers can map a late uniqueness rejection from the persistence
// layer (lost race after a passing pre-check) to the same code the pipeline
// would have produced.
func Duplicate(field string) *Violation {
	return &Violation{Field: field, Rule: CodeDuplicate}
}

// Code returns the machine-readable violation code, "<field>.<rule>".
func (v *Violation) Code() string {
	return v.Field + "." + v.Rule
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return "validation failed: " + v.Code()
}

// AsViolation unwraps err as a *Violation, or returns nil when err does not
// carry one. Store failures surfaced during validation are plain errors and
// unwrap to nil here.
func AsViolation(err error) *Violation {
	var v *Violation
	if errors.As(err, &v) {
		return v
	}
	return nil
}
