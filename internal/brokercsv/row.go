package brokercsv

import (
	"fmt"
	"math"
	"strings"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// Column names of the broker export.
const (
	ColumnDate        = "Date"
	ColumnAccount     = "Account"
	ColumnAsset       = "Asset"
	ColumnBuySell     = "BUY/SELL"
	ColumnNominal     = "Nominal"
	ColumnAmount      = "Amount"
	ColumnPrice       = "Price"
	ColumnCurrency    = "CCY"
	ColumnMovType     = "Mov.Type"
	ColumnNote        = "Note"
	columnAmountLabel = "Amount $/€" // header as written by older exports
)

// RequiredColumns must all be present in the header for parsing to proceed.
var RequiredColumns = []string{ColumnDate, ColumnAsset, ColumnBuySell, ColumnNominal, ColumnPrice}

// ValidateRow turns one raw record (column name -> cell) into a preview row.
//
// Each failing field appends one message to Errors and stays nil; the other
// fields of the row are still processed. The Amount column is optional and
// never invalidates a row.
func ValidateRow(raw map[string]string, rowIndex int) model.ImportPreviewRow {
	row := model.ImportPreviewRow{
		RowIndex: rowIndex,
		Errors:   []string{},
	}

	rawDate := raw[ColumnDate]
	if date, ok := ParseBrokerDate(rawDate); ok {
		row.Date = &date
	} else {
		row.Errors = append(row.Errors, fmt.Sprintf("Invalid date %q: expected DD-MM-YY", rawDate))
	}

	if ticker := strings.TrimSpace(raw[ColumnAsset]); ticker != "" {
		upper := strings.ToUpper(ticker)
		row.Ticker = &upper
	} else {
		row.Errors = append(row.Errors, "Asset is required")
	}

	typeRaw := strings.ToUpper(strings.TrimSpace(raw[ColumnBuySell]))
	switch typeRaw {
	case "BUY":
		t := model.TransactionTypeBuy
		row.Type = &t
	case "SELL":
		t := model.TransactionTypeSell
		row.Type = &t
	default:
		row.Errors = append(row.Errors, fmt.Sprintf("BUY/SELL must be \"BUY\" or \"SELL\", got %q", typeRaw))
	}

	qtyRaw := raw[ColumnNominal]
	if qty, ok := positive(qtyRaw); ok {
		row.Quantity = &qty
	} else {
		row.Errors = append(row.Errors, fmt.Sprintf("Nominal %q must be a positive number", qtyRaw))
	}

	priceRaw := raw[ColumnPrice]
	if price, ok := positive(priceRaw); ok {
		row.PricePerUnit = &price
	} else {
		row.Errors = append(row.Errors, fmt.Sprintf("Price %q must be a positive number", priceRaw))
	}

	amountRaw, ok := raw[ColumnAmount]
	if !ok {
		amountRaw = raw[columnAmountLabel]
	}
	if amountRaw = strings.TrimSpace(amountRaw); amountRaw != "" {
		if amount := ParseLocaleNumber(amountRaw); isFinite(amount) {
			row.TotalAmount = &amount
		}
	}

	row.Currency = strings.TrimSpace(raw[ColumnCurrency])
	row.Account = strings.TrimSpace(raw[ColumnAccount])
	row.Notes = joinNotes(raw[ColumnMovType], raw[ColumnNote])

	row.IsValid = len(row.Errors) == 0
	return row
}

func positive(raw string) (float64, bool) {
	v := ParseLocaleNumber(raw)
	if !isFinite(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func joinNotes(movType, note string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{movType, note} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}
