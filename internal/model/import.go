package model

// ImportPreviewRow is the parse result of one CSV data record.
// A nil field failed to parse and has at least one entry in Errors.
type ImportPreviewRow struct {
	RowIndex     int              `json:"rowIndex"` // 1-based
	Date         *string          `json:"date"`     // YYYY-MM-DD
	Ticker       *string          `json:"ticker"`
	Type         *TransactionType `json:"type"`
	Quantity     *float64         `json:"quantity"`
	PricePerUnit *float64         `json:"pricePerUnit"`
	TotalAmount  *float64         `json:"totalAmount"`
	Currency     string           `json:"currency"`
	Account      string           `json:"account"`
	Notes        string           `json:"notes"`
	IsValid      bool             `json:"isValid"`
	Errors       []string         `json:"errors"`
}

// ImportResult summarises a confirmed import.
type ImportResult struct {
	Imported int `json:"imported"` // new transactions appended to the history
	Skipped  int `json:"skipped"`  // duplicates of existing transactions
	Errors   int `json:"errors"`   // invalid preview rows excluded from the import
}

// ImportPreview is the outcome of parsing an upload without committing it.
type ImportPreview struct {
	Rows         []ImportPreviewRow `json:"rows"`
	ValidCount   int                `json:"validCount"`
	InvalidCount int                `json:"invalidCount"`
}
