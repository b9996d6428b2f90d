package validator

import "testing"

func TestUpiValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		upiId string
		valid bool
	}{
		{"alice@upi", true},
		{"alice.b-c_d@okbank", true},
		{"alice", false},
		{"alice@", false},
		{"@upi", false},
		{"alice@u pi", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.upiId, func(t *testing.T) {
			err := v.Var(tt.upiId, "upi")
			if tt.valid && err != nil {
				t.Errorf("%q should be valid: %v", tt.upiId, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("%q should be invalid", tt.upiId)
			}
		})
	}
}

func TestPaymentMethodValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		method string
		valid  bool
	}{
		{"credit_card", true},
		{"debit_card", true},
		{"upi", true},
		{"cash", false},
		{"", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.method, "payment_method")
		if tt.valid && err != nil {
			t.Errorf("%q should be valid: %v", tt.method, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%q should be invalid", tt.method)
		}
	}
}
