package request

// SetPricesRequest replaces the whole price mapping, keyed by ticker.
type SetPricesRequest struct {
	Prices map[string]float64 `json:"prices"`
}
