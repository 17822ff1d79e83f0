package pagequery

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnknownOperator is returned when a condition uses an operator
	// outside of the declared set.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrInvalidValue is returned when a condition value does not fit its
	// operator, e.g. BTW with anything but two bounds.
	ErrInvalidValue = errors.New("invalid condition value")
)

// Operator defines a comparison kind used to translate a filter condition
// into a predicate fragment.
type Operator string

const (
	OperatorEQ  Operator = "EQ"
	OperatorGT  Operator = "GT"
	OperatorGTE Operator = "GTE"
	OperatorLT  Operator = "LT"
	OperatorLTE Operator = "LTE"
	// OperatorMT is "more than", a synonym of OperatorGT.
	OperatorMT Operator = "MT"

	OperatorIN   Operator = "IN"
	OperatorNULL Operator = "NULL"
	OperatorBTW  Operator = "BTW"

	// OperatorLIKE matches values containing the pattern.
	OperatorLIKE Operator = "LIKE"
	// OperatorLikeRight matches values starting with the pattern.
	OperatorLikeRight Operator = "LIKE_RIGHT"
	// OperatorLikeLeft matches values ending with the pattern.
	OperatorLikeLeft Operator = "LIKE_LEFT"
	// OperatorSW ("starts with") is an alias of OperatorLikeRight.
	OperatorSW Operator = "SW"
)

// Valid reports whether o is one of the declared operators.
func (o Operator) Valid() bool {
	switch o {
	case OperatorEQ, OperatorGT, OperatorGTE, OperatorLT, OperatorLTE, OperatorMT,
		OperatorIN, OperatorNULL, OperatorBTW,
		OperatorLIKE, OperatorLikeRight, OperatorLikeLeft, OperatorSW:
		return true
	default:
		return false
	}
}

// IsPattern reports whether the operator is a case-insensitive pattern match.
func (o Operator) IsPattern() bool {
	return o == OperatorLIKE || o == OperatorLikeRight || o == OperatorLikeLeft || o == OperatorSW
}

// comparison returns the SQL comparison symbol for scalar operators.
func (o Operator) comparison() (string, bool) {
	switch o {
	case OperatorEQ:
		return "=", true
	case OperatorGT, OperatorMT:
		return ">", true
	case OperatorGTE:
		return ">=", true
	case OperatorLT:
		return "<", true
	case OperatorLTE:
		return "<=", true
	default:
		return "", false
	}
}

// pattern wraps v into the LIKE pattern matching the operator.
func (o Operator) pattern(v any) string {
	switch o {
	case OperatorLIKE:
		return fmt.Sprintf("%%%v%%", v)
	case OperatorLikeLeft:
		return fmt.Sprintf("%%%v", v)
	default:
		return fmt.Sprintf("%v%%", v)
	}
}

// validateValue checks that v has the shape the operator expects.
func (o Operator) validateValue(v any) error {
	if !o.Valid() {
		return fmt.Errorf("%w '%s'", ErrUnknownOperator, o)
	}

	switch o {
	case OperatorIN:
		if !isList(v) {
			return fmt.Errorf("%w: %s expects a slice, got %T", ErrInvalidValue, o, v)
		}
	case OperatorBTW:
		if !isList(v) || reflect.ValueOf(v).Len() != 2 {
			return fmt.Errorf("%w: %s expects exactly two bounds, got %v", ErrInvalidValue, o, v)
		}
	case OperatorNULL:
		if _, ok := v.(bool); v != nil && !ok {
			return fmt.Errorf("%w: %s expects nil or bool, got %T", ErrInvalidValue, o, v)
		}
	}

	return nil
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}

	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
