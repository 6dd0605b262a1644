package query

import (
	"math"
	"testing"
)

func TestParsePayment(t *testing.T) {
	tests := []struct {
		payment string
		want    float64
	}{
		{"₹500", 500},
		{"₹300/day", 300},
		{"₹600/person", 600},
		{"800", 800},
		{"Rs. 1,200", 1200},
		{"₹250/day", 250},
	}

	for _, tt := range tests {
		t.Run(tt.payment, func(t *testing.T) {
			if got := ParsePayment(tt.payment); got != tt.want {
				t.Errorf("ParsePayment(%q) = %v, want %v", tt.payment, got, tt.want)
			}
		})
	}
}

func TestParsePaymentNaN(t *testing.T) {
	for _, payment := range []string{"", "negotiable", "₹/day"} {
		if got := ParsePayment(payment); !math.IsNaN(got) {
			t.Errorf("ParsePayment(%q) = %v, want NaN", payment, got)
		}
	}
}
