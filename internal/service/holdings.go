package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// Epsilon is the quantity below which a position counts as fully exited.
// It absorbs floating-point dust left after selling an entire position.
const Epsilon = 1e-6

var cryptoTickers = map[string]bool{
	"BTC": true, "ETH": true, "SOL": true, "ADA": true, "DOT": true,
	"AVAX": true, "MATIC": true, "XRP": true, "LTC": true, "LINK": true,
}

var etfTickers = map[string]bool{
	"VOO": true, "VTI": true, "SPY": true, "QQQ": true, "VXUS": true,
	"IVV": true, "SWRD": true, "EIMI": true, "CSPX": true,
}

// position is the running state of one ticker while replaying the history.
type position struct {
	quantity     float64
	avgCostBasis float64
	currency     string
}

// RebuildHoldings recomputes every current holding from the full transaction
// history using the Weighted Average Cost Basis method.
//
// Transactions are replayed in ascending date order (ties keep their input
// order), so the result does not depend on the order of the input slice.
//
// Transaction Processing Logic:
//   - "buy": opens the position, or re-opens it after a full exit, at the trade
//     price; otherwise blends (oldQty*oldAvg + qty*price) / (oldQty+qty)
//   - "sell": reduces quantity, floored at 0; the average cost is unchanged.
//     Sells for a ticker that was never bought are ignored
//   - "transfer_in", "transfer_out": no effect
//
// Tickers whose remaining quantity is at or below Epsilon are omitted. Holding
// IDs follow output position, names default to the ticker and the asset class
// is inferred from the ticker. Cash holdings are never produced here.
func RebuildHoldings(transactions []model.Transaction) []model.Holding {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	positions := make(map[string]*position)
	var order []string

	for _, tx := range sorted {
		pos := positions[tx.Ticker]

		switch tx.Type {
		case model.TransactionTypeBuy:
			if pos == nil {
				order = append(order, tx.Ticker)
				pos = &position{}
				positions[tx.Ticker] = pos
			}
			if pos.quantity < Epsilon {
				pos.quantity = tx.Quantity
				pos.avgCostBasis = tx.PricePerUnit
				pos.currency = tx.Currency
				continue
			}
			total := pos.quantity + tx.Quantity
			pos.avgCostBasis = (pos.quantity*pos.avgCostBasis + tx.Quantity*tx.PricePerUnit) / total
			pos.quantity = total
		case model.TransactionTypeSell:
			if pos == nil {
				continue
			}
			pos.quantity = max(0, pos.quantity-tx.Quantity)
		}
	}

	holdings := make([]model.Holding, 0, len(order))
	for _, ticker := range order {
		pos := positions[ticker]
		if pos.quantity <= Epsilon {
			continue
		}
		holdings = append(holdings, model.Holding{
			ID:           fmt.Sprintf("holding-%d", len(holdings)),
			Ticker:       ticker,
			Name:         ticker,
			AssetClass:   inferAssetClass(ticker),
			Quantity:     pos.quantity,
			AvgCostBasis: pos.avgCostBasis,
			Currency:     pos.currency,
		})
	}

	return holdings
}

func inferAssetClass(ticker string) model.AssetClass {
	ticker = strings.ToUpper(ticker)
	switch {
	case cryptoTickers[ticker]:
		return model.AssetClassCrypto
	case etfTickers[ticker]:
		return model.AssetClassETF
	default:
		return model.AssetClassStock
	}
}
