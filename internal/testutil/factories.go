package testutil

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/ndewijer/portfolio-tracker/internal/brokercsv"
	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// TransactionBuilder provides a fluent interface for creating transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction("AAPL").
//	    WithDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
//	    WithQuantity(10).
//	    WithPrice(150).
//	    Build()
type TransactionBuilder struct {
	ID           string
	Date         time.Time
	Ticker       string
	Type         model.TransactionType
	Quantity     float64
	PricePerUnit float64
	Currency     string
}

// NewTransaction creates a buy TransactionBuilder with defaults
func NewTransaction(ticker string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:           MakeID(),
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Ticker:       ticker,
		Type:         model.TransactionTypeBuy,
		Quantity:     10,
		PricePerUnit: 100,
		Currency:     "USD",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the trade date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType model.TransactionType) *TransactionBuilder {
	b.Type = txType
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionTypeSell
	return b
}

// WithQuantity sets the quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets the price per unit.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.PricePerUnit = price
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return model.Transaction{
		ID:           b.ID,
		Date:         b.Date,
		Ticker:       b.Ticker,
		Type:         b.Type,
		Quantity:     b.Quantity,
		PricePerUnit: b.PricePerUnit,
		Currency:     b.Currency,
	}
}

// BrokerCSVBuilder assembles a broker export for upload tests.
//
// Example usage:
//
//	csv := testutil.NewBrokerCSV().
//	    AddRow("01-09-21", "BTC", "BUY", "0,5", "$50.000,00").
//	    String()
type BrokerCSVBuilder struct {
	header []string
	rows   []map[string]string
}

// NewBrokerCSV creates a builder with the full broker header.
func NewBrokerCSV() *BrokerCSVBuilder {
	return &BrokerCSVBuilder{
		header: []string{
			brokercsv.ColumnDate,
			brokercsv.ColumnAccount,
			brokercsv.ColumnAsset,
			brokercsv.ColumnBuySell,
			brokercsv.ColumnNominal,
			brokercsv.ColumnAmount,
			brokercsv.ColumnPrice,
			brokercsv.ColumnCurrency,
			brokercsv.ColumnMovType,
			brokercsv.ColumnNote,
		},
	}
}

// WithoutColumn drops a column from the header and every row.
func (b *BrokerCSVBuilder) WithoutColumn(column string) *BrokerCSVBuilder {
	b.header = slices.DeleteFunc(b.header, func(h string) bool { return h == column })
	return b
}

// AddRow appends a trade with the given core fields. Account and currency
// get fixed defaults.
func (b *BrokerCSVBuilder) AddRow(date, asset, side, nominal, price string) *BrokerCSVBuilder {
	return b.AddRecord(map[string]string{
		brokercsv.ColumnDate:     date,
		brokercsv.ColumnAccount:  "BROKER",
		brokercsv.ColumnAsset:    asset,
		brokercsv.ColumnBuySell:  side,
		brokercsv.ColumnNominal:  nominal,
		brokercsv.ColumnPrice:    price,
		brokercsv.ColumnCurrency: "USD",
		brokercsv.ColumnMovType:  "PTF",
	})
}

// AddRecord appends a row given by column name. Missing columns are empty.
func (b *BrokerCSVBuilder) AddRecord(record map[string]string) *BrokerCSVBuilder {
	b.rows = append(b.rows, record)
	return b
}

// String renders the export with ';' separators.
func (b *BrokerCSVBuilder) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(b.header, ";"))
	sb.WriteString("\n")
	for _, row := range b.rows {
		fields := make([]string, len(b.header))
		for i, h := range b.header {
			fields[i] = row[h]
		}
		sb.WriteString(strings.Join(fields, ";"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Reader returns the rendered export as a reader.
func (b *BrokerCSVBuilder) Reader() io.Reader {
	return strings.NewReader(b.String())
}
