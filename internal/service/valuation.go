package service

import (
	"slices"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// Valuate enriches holdings with price, value, P&L and portfolio weight.
//
// A ticker absent from prices is valued at 0. PnlPercent is 0 when the cost
// basis is 0, and every weight is 0 when the total value is 0. The result is
// ordered by value descending; equal values keep their input order.
func Valuate(holdings []model.Holding, prices model.PriceMap) []model.HoldingWithValue {
	valued := make([]model.HoldingWithValue, 0, len(holdings))
	var totalValue float64

	for _, h := range holdings {
		price := prices[h.Ticker]
		value := price * h.Quantity
		costBasis := h.AvgCostBasis * h.Quantity
		pnl := value - costBasis

		valued = append(valued, model.HoldingWithValue{
			Holding:      h,
			CurrentPrice: price,
			Value:        value,
			CostBasis:    costBasis,
			Pnl:          pnl,
			PnlPercent:   percentOf(pnl, costBasis),
		})
		totalValue += value
	}

	for i := range valued {
		if totalValue > 0 {
			valued[i].Weight = valued[i].Value / totalValue * 100
		}
	}

	slices.SortStableFunc(valued, func(a, b model.HoldingWithValue) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})

	return valued
}

// Summarize totals the valuated holdings.
func Summarize(holdings []model.HoldingWithValue) model.PortfolioSummary {
	var summary model.PortfolioSummary
	for _, h := range holdings {
		summary.TotalValue += h.Value
		summary.TotalCostBasis += h.CostBasis
	}
	summary.TotalPnl = summary.TotalValue - summary.TotalCostBasis
	summary.TotalPnlPercent = percentOf(summary.TotalPnl, summary.TotalCostBasis)

	return summary
}

// Allocate groups valuated holdings by asset class and sums each class's value.
// Classes appear in the order they are first seen in holdings.
func Allocate(holdings []model.HoldingWithValue) []model.AllocationSlice {
	allocation := make([]model.AllocationSlice, 0)
	index := make(map[model.AssetClass]int)
	var totalValue float64

	for _, h := range holdings {
		i, ok := index[h.AssetClass]
		if !ok {
			i = len(allocation)
			index[h.AssetClass] = i
			allocation = append(allocation, model.AllocationSlice{AssetClass: h.AssetClass})
		}
		allocation[i].Value += h.Value
		totalValue += h.Value
	}

	for i := range allocation {
		allocation[i].Weight = percentOf(allocation[i].Value, totalValue)
	}
	return allocation
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
