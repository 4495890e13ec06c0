package brokercsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

func validRecord() map[string]string {
	return map[string]string{
		ColumnDate:     "01-09-21",
		ColumnAccount:  "BTC_LEDGER",
		ColumnAsset:    "BTC",
		ColumnBuySell:  "BUY",
		ColumnNominal:  "0,013756",
		ColumnAmount:   " $692,66 ",
		ColumnPrice:    " $50.353,30 ",
		ColumnCurrency: " USD ",
		ColumnMovType:  "PTF",
		ColumnNote:     "",
	}
}

func TestValidateRow_ValidRecord(t *testing.T) {
	row := ValidateRow(validRecord(), 1)

	require.True(t, row.IsValid, "errors: %v", row.Errors)
	assert.Empty(t, row.Errors)
	assert.Equal(t, 1, row.RowIndex)

	require.NotNil(t, row.Date)
	assert.Equal(t, "2021-09-01", *row.Date)
	require.NotNil(t, row.Ticker)
	assert.Equal(t, "BTC", *row.Ticker)
	require.NotNil(t, row.Type)
	assert.Equal(t, model.TransactionTypeBuy, *row.Type)
	require.NotNil(t, row.Quantity)
	assert.InDelta(t, 0.013756, *row.Quantity, 1e-12)
	require.NotNil(t, row.PricePerUnit)
	assert.InDelta(t, 50353.30, *row.PricePerUnit, 1e-9)
	require.NotNil(t, row.TotalAmount)
	assert.InDelta(t, 692.66, *row.TotalAmount, 1e-9)

	assert.Equal(t, "USD", row.Currency)
	assert.Equal(t, "BTC_LEDGER", row.Account)
	assert.Equal(t, "PTF", row.Notes)
}

func TestValidateRow_FieldErrors(t *testing.T) {
	t.Run("every failing field adds one error", func(t *testing.T) {
		rec := map[string]string{
			ColumnDate:    "30-02-21",
			ColumnAsset:   "  ",
			ColumnBuySell: "transfer",
			ColumnNominal: "-1",
			ColumnPrice:   "abc",
		}

		row := ValidateRow(rec, 7)

		assert.False(t, row.IsValid)
		assert.Len(t, row.Errors, 5)
		assert.Nil(t, row.Date)
		assert.Nil(t, row.Ticker)
		assert.Nil(t, row.Type)
		assert.Nil(t, row.Quantity)
		assert.Nil(t, row.PricePerUnit)
		assert.Contains(t, row.Errors, `BUY/SELL must be "BUY" or "SELL", got "TRANSFER"`)
		assert.Contains(t, row.Errors, "Asset is required")
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		rec := validRecord()
		rec[ColumnNominal] = "0,00"

		row := ValidateRow(rec, 1)

		assert.False(t, row.IsValid)
		assert.Equal(t, []string{`Nominal "0,00" must be a positive number`}, row.Errors)
		assert.NotNil(t, row.Date, "other fields are still parsed")
	})

	t.Run("missing columns behave as empty cells", func(t *testing.T) {
		row := ValidateRow(map[string]string{}, 3)

		assert.False(t, row.IsValid)
		assert.Len(t, row.Errors, 5)
		assert.Equal(t, "", row.Currency)
		assert.Equal(t, "", row.Account)
		assert.Equal(t, "", row.Notes)
	})
}

func TestValidateRow_OptionalFields(t *testing.T) {
	t.Run("unparseable amount is dropped without invalidating", func(t *testing.T) {
		rec := validRecord()
		rec[ColumnAmount] = "n/a"

		row := ValidateRow(rec, 1)

		assert.True(t, row.IsValid)
		assert.Nil(t, row.TotalAmount)
	})

	t.Run("blank amount is nil", func(t *testing.T) {
		rec := validRecord()
		rec[ColumnAmount] = "   "

		assert.Nil(t, ValidateRow(rec, 1).TotalAmount)
	})

	t.Run("legacy amount header is honoured", func(t *testing.T) {
		rec := validRecord()
		delete(rec, ColumnAmount)
		rec["Amount $/€"] = "$129,07"

		row := ValidateRow(rec, 1)

		require.NotNil(t, row.TotalAmount)
		assert.InDelta(t, 129.07, *row.TotalAmount, 1e-9)
	})

	t.Run("notes join movement type and note", func(t *testing.T) {
		rec := validRecord()
		rec[ColumnNote] = " Sample Apple buy "

		assert.Equal(t, "PTF | Sample Apple buy", ValidateRow(rec, 1).Notes)

		rec[ColumnMovType] = ""
		assert.Equal(t, "Sample Apple buy", ValidateRow(rec, 1).Notes)
	})

	t.Run("type and ticker are case insensitive", func(t *testing.T) {
		rec := validRecord()
		rec[ColumnBuySell] = " sell "
		rec[ColumnAsset] = " aapl "

		row := ValidateRow(rec, 1)

		require.True(t, row.IsValid)
		assert.Equal(t, model.TransactionTypeSell, *row.Type)
		assert.Equal(t, "AAPL", *row.Ticker)
	})
}
