package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func trade(date time.Time, ticker string, txType model.TransactionType, qty, price float64) model.Transaction {
	return model.Transaction{
		ID:           ticker + date.Format(dateLayout) + string(txType),
		Date:         date,
		Ticker:       ticker,
		Type:         txType,
		Quantity:     qty,
		PricePerUnit: price,
		Currency:     "USD",
	}
}

func TestRebuildHoldings_WeightedAverage(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "AAPL", model.TransactionTypeBuy, 10, 100),
		trade(day(2), "AAPL", model.TransactionTypeBuy, 30, 140),
	})

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.Equal(t, "holding-0", h.ID)
	assert.Equal(t, "AAPL", h.Ticker)
	assert.Equal(t, "AAPL", h.Name)
	assert.Equal(t, model.AssetClassStock, h.AssetClass)
	assert.Equal(t, "USD", h.Currency)
	assert.InDelta(t, 40, h.Quantity, 1e-9)
	assert.InDelta(t, (10*100+30*140)/40.0, h.AvgCostBasis, 1e-9)
}

func TestRebuildHoldings_SellKeepsAverage(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "VOO", model.TransactionTypeBuy, 10, 380),
		trade(day(2), "VOO", model.TransactionTypeBuy, 10, 420),
		trade(day(3), "VOO", model.TransactionTypeSell, 5, 999),
	})

	require.Len(t, holdings, 1)
	assert.InDelta(t, 15, holdings[0].Quantity, 1e-9)
	assert.InDelta(t, 400, holdings[0].AvgCostBasis, 1e-9)
	assert.Equal(t, model.AssetClassETF, holdings[0].AssetClass)
}

func TestRebuildHoldings_OversellRemovesPosition(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "AAPL", model.TransactionTypeBuy, 5, 100),
		trade(day(2), "AAPL", model.TransactionTypeSell, 8, 120),
	})

	assert.Empty(t, holdings)
}

func TestRebuildHoldings_DustIsDropped(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "BTC", model.TransactionTypeBuy, 0.1, 30000),
		trade(day(2), "BTC", model.TransactionTypeBuy, 0.2, 40000),
		trade(day(3), "BTC", model.TransactionTypeSell, 0.3-5e-7, 50000),
	})

	assert.Empty(t, holdings)
}

func TestRebuildHoldings_ReopenAfterFullExit(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "ETH", model.TransactionTypeBuy, 2, 1000),
		trade(day(2), "ETH", model.TransactionTypeSell, 2, 1500),
		trade(day(3), "ETH", model.TransactionTypeBuy, 1, 3000),
	})

	require.Len(t, holdings, 1)
	assert.InDelta(t, 1, holdings[0].Quantity, 1e-9)
	assert.InDelta(t, 3000, holdings[0].AvgCostBasis, 1e-9)
	assert.Equal(t, model.AssetClassCrypto, holdings[0].AssetClass)
}

func TestRebuildHoldings_OrphanSellIgnored(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "TSLA", model.TransactionTypeSell, 3, 200),
		trade(day(2), "AAPL", model.TransactionTypeBuy, 1, 150),
	})

	require.Len(t, holdings, 1)
	assert.Equal(t, "AAPL", holdings[0].Ticker)
	assert.Equal(t, "holding-0", holdings[0].ID)
}

func TestRebuildHoldings_TransfersIgnored(t *testing.T) {
	holdings := RebuildHoldings([]model.Transaction{
		trade(day(1), "AAPL", model.TransactionTypeBuy, 4, 100),
		trade(day(2), "AAPL", model.TransactionTypeTransferIn, 100, 1),
		trade(day(3), "AAPL", model.TransactionTypeTransferOut, 2, 1),
	})

	require.Len(t, holdings, 1)
	assert.InDelta(t, 4, holdings[0].Quantity, 1e-9)
	assert.InDelta(t, 100, holdings[0].AvgCostBasis, 1e-9)
}

func TestRebuildHoldings_ReplaysInDateOrder(t *testing.T) {
	ordered := []model.Transaction{
		trade(day(1), "AAPL", model.TransactionTypeBuy, 10, 100),
		trade(day(2), "AAPL", model.TransactionTypeSell, 10, 120),
		trade(day(3), "AAPL", model.TransactionTypeBuy, 2, 200),
	}
	shuffled := []model.Transaction{ordered[2], ordered[0], ordered[1]}

	assert.Equal(t, RebuildHoldings(ordered), RebuildHoldings(shuffled))

	holdings := RebuildHoldings(shuffled)
	require.Len(t, holdings, 1)
	assert.InDelta(t, 200, holdings[0].AvgCostBasis, 1e-9)
}

func TestRebuildHoldings_Idempotent(t *testing.T) {
	history := []model.Transaction{
		trade(day(1), "BTC", model.TransactionTypeBuy, 0.5, 28000),
		trade(day(2), "AAPL", model.TransactionTypeBuy, 10, 150),
		trade(day(3), "BTC", model.TransactionTypeBuy, 0.25, 40000),
		trade(day(4), "AAPL", model.TransactionTypeSell, 3, 180),
	}

	assert.Equal(t, RebuildHoldings(history), RebuildHoldings(history))
}

func TestRebuildHoldings_DoesNotModifyInput(t *testing.T) {
	history := []model.Transaction{
		trade(day(2), "AAPL", model.TransactionTypeBuy, 1, 100),
		trade(day(1), "VOO", model.TransactionTypeBuy, 1, 100),
	}

	RebuildHoldings(history)

	assert.Equal(t, "AAPL", history[0].Ticker)
	assert.Equal(t, "VOO", history[1].Ticker)
}

func TestRebuildHoldings_Empty(t *testing.T) {
	holdings := RebuildHoldings(nil)

	assert.NotNil(t, holdings)
	assert.Empty(t, holdings)
}

func TestInferAssetClass(t *testing.T) {
	assert.Equal(t, model.AssetClassCrypto, inferAssetClass("btc"))
	assert.Equal(t, model.AssetClassETF, inferAssetClass("SWRD"))
	assert.Equal(t, model.AssetClassStock, inferAssetClass("BTC-USD"))
	assert.Equal(t, model.AssetClassStock, inferAssetClass("MSFT"))
}
