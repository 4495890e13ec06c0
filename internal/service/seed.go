package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/repository"
)

// CashTicker is the cash sentinel; its price is always 1.
const CashTicker = "EUR_CASH"

// SeedHoldings returns the demo holdings used when no state has been saved yet.
func SeedHoldings() []model.Holding {
	return []model.Holding{
		{ID: "seed-1", Ticker: "AAPL", Name: "Apple Inc.", AssetClass: model.AssetClassStock, Quantity: 10, AvgCostBasis: 150, Currency: "EUR"},
		{ID: "seed-2", Ticker: "VOO", Name: "Vanguard S&P 500 ETF", AssetClass: model.AssetClassETF, Quantity: 5, AvgCostBasis: 380, Currency: "EUR"},
		{ID: "seed-3", Ticker: "BTC-USD", Name: "Bitcoin", AssetClass: model.AssetClassCrypto, Quantity: 0.5, AvgCostBasis: 28000, Currency: "EUR"},
		{ID: "seed-4", Ticker: "ETH-USD", Name: "Ethereum", AssetClass: model.AssetClassCrypto, Quantity: 3, AvgCostBasis: 1800, Currency: "EUR"},
		{ID: "seed-5", Ticker: CashTicker, Name: "EUR Cash", AssetClass: model.AssetClassCash, Quantity: 5000, AvgCostBasis: 1, Currency: "EUR"},
	}
}

// SeedPrices returns the static demo price mapping.
func SeedPrices() model.PriceMap {
	return model.PriceMap{
		"AAPL":     189,
		"VOO":      445,
		"BTC-USD":  62000,
		"ETH-USD":  3100,
		CashTicker: 1,
	}
}

// LoadInitialState reads the saved state. When nothing was saved it returns
// the seed holdings if seed is set, or an empty state otherwise.
func LoadInitialState(ctx context.Context, repo *repository.StateRepository, seed bool) (model.PersistedState, error) {
	state, _, err := repo.Load(ctx, repository.StateKey)
	if err == nil {
		return cloneState(state), nil
	}
	if !errors.Is(err, apperrors.ErrStateNotFound) {
		return model.PersistedState{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadState, err)
	}

	initial := model.PersistedState{
		Transactions: []model.Transaction{},
		Holdings:     []model.Holding{},
	}
	if seed {
		initial.Holdings = SeedHoldings()
	}
	return initial, nil
}
