package validation

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ndewijer/portfolio-tracker/internal/api/request"
)

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("Expected valid UUID, got %v", err)
	}

	err := ValidateUUID("not-a-uuid")
	if !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}
}

func TestValidateSetPrices(t *testing.T) {
	tests := []struct {
		name      string
		prices    map[string]float64
		wantField string
	}{
		{"valid mapping", map[string]float64{"AAPL": 189, "FREE": 0}, ""},
		{"empty mapping", map[string]float64{}, "prices"},
		{"nil mapping", nil, "prices"},
		{"blank ticker", map[string]float64{" ": 10}, "prices"},
		{"negative price", map[string]float64{"AAPL": -1}, "prices.AAPL"},
		{"infinite price", map[string]float64{"AAPL": math.Inf(1)}, "prices.AAPL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSetPrices(request.SetPricesRequest{Prices: tt.prices})

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %v", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "second", "a": "first"}}

	if got := err.Error(); got != "a: first; b: second" {
		t.Errorf("Error() = %q", got)
	}
	if !strings.Contains(err.Error(), "a: first") {
		t.Error("Expected message to include field a")
	}
}
