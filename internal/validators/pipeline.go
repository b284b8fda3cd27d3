package validators

import (
	"context"
	"fmt"
	"math"
)

// Fields holds the normalized values of a payload that passed validation,
// keyed by field name. Accessors assume the pipeline already coerced the
// value to the type declared by the field's rule; asking for a field under
// the wrong type returns the accessor's zero value.
type Fields map[string]any

// String returns the field value as a string.
func (f Fields) String(field string) string {
	s, _ := f[field].(string)
	return s
}

// Int returns the field value as an int.
func (f Fields) Int(field string) int {
	i, _ := f[field].(int)
	return i
}

// Float returns the field value as a float64.
func (f Fields) Float(field string) float64 {
	v, _ := f[field].(float64)
	return v
}

// Bool returns the field value as a bool.
func (f Fields) Bool(field string) bool {
	b, _ := f[field].(bool)
	return b
}

// NullableFloat returns the field value as a *float64, nil when the payload
// carried JSON null.
func (f Fields) NullableFloat(field string) *float64 {
	v, _ := f[field].(*float64)
	return v
}

// Run evaluates rules against payload in declaration order and returns the
// normalized field values.
//
// The pipeline is fail-fast: the first violated rule aborts evaluation and
// is returned as a *Violation error. Per field the checks run in the fixed
// order required → type → range/shape → uniqueness. Uniqueness lookups hit
// the external store; a store failure during a lookup is returned as a
// plain wrapped error, never as a violation, and the caller must treat it
// as fatal for the request.
//
// Run has no side effects beyond the reads performed by Unique lookups.
func Run(ctx context.Context, payload map[string]any, rules []Rule) (Fields, error) {
	fields := make(Fields, len(rules))

	for _, rule := range rules {
		raw, present := payload[rule.Field]
		if !present {
			if rule.Required {
				return nil, NewViolation(rule.Field, CodeRequired)
			}
			continue
		}

		value, code := coerce(rule, raw)
		if code != "" {
			return nil, NewViolation(rule.Field, code)
		}

		if rule.Unique != nil {
			exists, err := rule.Unique(ctx, value)
			if err != nil {
				return nil, fmt.Errorf("uniqueness lookup for field %q failed: %w", rule.Field, err)
			}
			if exists {
				return nil, NewViolation(rule.Field, CodeDuplicate)
			}
		}

		fields[rule.Field] = value
	}

	return fields, nil
}

// coerce checks raw against the rule's kind and local constraints and
// returns the normalized value. A non-empty code names the violated rule.
func coerce(rule Rule, raw any) (any, string) {
	switch rule.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, rule.Kind.codeSuffix()
		}
		if rule.MinLen > 0 && len(s) < rule.MinLen {
			return nil, CodeShort
		}
		return s, ""

	case Integer:
		f, ok := asFloat(raw)
		if !ok || math.Trunc(f) != f {
			return nil, rule.Kind.codeSuffix()
		}
		if rule.Min != nil && f < *rule.Min {
			return nil, CodeLow
		}
		return int(f), ""

	case Number:
		f, ok := asFloat(raw)
		if !ok {
			return nil, rule.Kind.codeSuffix()
		}
		if rule.Min != nil && f < *rule.Min {
			return nil, CodeLow
		}
		return f, ""

	case Boolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, rule.Kind.codeSuffix()
		}
		return b, ""

	case NullableNumber:
		if raw == nil {
			return (*float64)(nil), ""
		}
		f, ok := asFloat(raw)
		if !ok {
			return nil, rule.Kind.codeSuffix()
		}
		return &f, ""
	}

	return nil, rule.Kind.codeSuffix()
}

// asFloat widens the numeric types a payload may realistically carry.
// encoding/json only produces float64, but rule tables are also exercised
// directly in tests with native ints.
func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
