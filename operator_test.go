package pagequery

import (
	"errors"
	"testing"
)

func Test_Operator_Valid(t *testing.T) {
	tests := []struct {
		name    string
		in      Operator
		valid   bool
		pattern bool
	}{
		{"EQ", OperatorEQ, true, false},
		{"GT", OperatorGT, true, false},
		{"GTE", OperatorGTE, true, false},
		{"LT", OperatorLT, true, false},
		{"LTE", OperatorLTE, true, false},
		{"MT", OperatorMT, true, false},
		{"IN", OperatorIN, true, false},
		{"NULL", OperatorNULL, true, false},
		{"BTW", OperatorBTW, true, false},
		{"LIKE", OperatorLIKE, true, true},
		{"LIKE_RIGHT", OperatorLikeRight, true, true},
		{"LIKE_LEFT", OperatorLikeLeft, true, true},
		{"SW", OperatorSW, true, true},
		{"unknown", Operator("NEQ"), false, false},
		{"empty", Operator(""), false, false},
		{"symbol is not an operator", Operator(">"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Valid(); got != tt.valid {
				t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
			}
			if got := tt.in.IsPattern(); got != tt.pattern {
				t.Errorf("%s: IsPattern=%v want %v", tt.name, got, tt.pattern)
			}
		})
	}
}

func Test_Operator_pattern(t *testing.T) {
	tests := []struct {
		name string
		in   Operator
		want string
	}{
		{"contains", OperatorLIKE, "%jo%"},
		{"starts with", OperatorLikeRight, "jo%"},
		{"starts with alias", OperatorSW, "jo%"},
		{"ends with", OperatorLikeLeft, "%jo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.pattern("jo"); got != tt.want {
				t.Errorf("%s: got %q want %q", tt.name, got, tt.want)
			}
		})
	}
}

func Test_Operator_validateValue(t *testing.T) {
	tests := []struct {
		name    string
		in      Operator
		value   any
		wantErr error
	}{
		{"unknown operator", Operator("NEQ"), 1, ErrUnknownOperator},
		{"IN with slice", OperatorIN, []int{1, 2}, nil},
		{"IN with array", OperatorIN, [2]string{"a", "b"}, nil},
		{"IN with scalar", OperatorIN, 1, ErrInvalidValue},
		{"IN with bytes", OperatorIN, []byte("ab"), ErrInvalidValue},
		{"IN with nil", OperatorIN, nil, ErrInvalidValue},
		{"BTW with two bounds", OperatorBTW, []int{1, 2}, nil},
		{"BTW with one bound", OperatorBTW, []int{1}, ErrInvalidValue},
		{"BTW with scalar", OperatorBTW, 1, ErrInvalidValue},
		{"NULL with nil", OperatorNULL, nil, nil},
		{"NULL with bool", OperatorNULL, false, nil},
		{"NULL with string", OperatorNULL, "yes", ErrInvalidValue},
		{"GT with anything", OperatorGT, "abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.validateValue(tt.value)
			if tt.wantErr == nil && err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: got error %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}
