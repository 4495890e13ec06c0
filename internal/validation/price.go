package validation

import (
	"math"
	"strings"

	"github.com/ndewijer/portfolio-tracker/internal/api/request"
)

// ValidateSetPrices validates a price mapping replacement.
//
// Rules:
//   - prices: must contain at least one entry
//   - each ticker: must be non-blank
//   - each price: must be a finite number, zero or greater
//
// Returns a validation Error keyed by "prices" or "prices.<ticker>".
func ValidateSetPrices(req request.SetPricesRequest) error {
	errors := make(map[string]string)

	if len(req.Prices) == 0 {
		errors["prices"] = "at least one price is required"
	}

	for ticker, price := range req.Prices {
		if strings.TrimSpace(ticker) == "" {
			errors["prices"] = "ticker must not be empty"
			continue
		}
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			errors["prices."+ticker] = "price must be a non-negative number"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
