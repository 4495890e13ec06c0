package model

// AssetClass groups holdings for allocation reporting.
type AssetClass string

// Known asset classes. Cash is only ever produced by seed data.
const (
	AssetClassStock  AssetClass = "stock"
	AssetClassETF    AssetClass = "etf"
	AssetClassCrypto AssetClass = "crypto"
	AssetClassCash   AssetClass = "cash"
)

// Holding is a snapshot of one current position.
// Holdings are a projection of the transaction history and are never edited directly.
type Holding struct {
	ID           string     `json:"id"`
	Ticker       string     `json:"ticker"`
	Name         string     `json:"name"`
	AssetClass   AssetClass `json:"assetClass"`
	Quantity     float64    `json:"quantity"`
	AvgCostBasis float64    `json:"avgCostBasis"` // average purchase price per unit
	Currency     string     `json:"currency"`
}

// HoldingWithValue is a Holding enriched with values derived from a price mapping.
// It is computed on every read and never stored.
type HoldingWithValue struct {
	Holding
	CurrentPrice float64 `json:"currentPrice"` // price from the PriceMap, 0 when missing
	Value        float64 `json:"value"`        // CurrentPrice * Quantity
	CostBasis    float64 `json:"costBasis"`    // AvgCostBasis * Quantity
	Pnl          float64 `json:"pnl"`          // Value - CostBasis
	PnlPercent   float64 `json:"pnlPercent"`   // Pnl / CostBasis * 100, 0 when CostBasis is 0
	Weight       float64 `json:"weight"`       // Value / total portfolio value * 100
}

// PortfolioSummary contains the totals across all valuated holdings.
type PortfolioSummary struct {
	TotalValue      float64 `json:"totalValue"`
	TotalCostBasis  float64 `json:"totalCostBasis"`
	TotalPnl        float64 `json:"totalPnl"`
	TotalPnlPercent float64 `json:"totalPnlPercent"`
}

// AllocationSlice is the share of the portfolio held in one asset class.
type AllocationSlice struct {
	AssetClass AssetClass `json:"assetClass"`
	Value      float64    `json:"value"`
	Weight     float64    `json:"weight"` // Value / total portfolio value * 100
}

// PriceMap maps a ticker to its current price in the reporting currency.
type PriceMap map[string]float64

// PersistedState is the blob saved to storage after every committed import.
// Prices are deliberately absent: they are refreshed every session.
type PersistedState struct {
	Transactions []Transaction `json:"transactions"`
	Holdings     []Holding     `json:"holdings"`
}
