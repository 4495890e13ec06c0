package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the JSON encoding of Transaction.Date.
const DateLayout = "2006-01-02"

// TransactionType is the kind of trade recorded in a Transaction.
type TransactionType string

// Supported transaction types. Transfers are stored but not modelled by the
// holdings rebuild.
const (
	TransactionTypeBuy         TransactionType = "buy"
	TransactionTypeSell        TransactionType = "sell"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
)

// Transaction represents one immutable trade in the transaction history.
// Transactions are appended by the importer and never mutated or deleted.
type Transaction struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Ticker       string          `json:"ticker"`
	Type         TransactionType `json:"type"`
	Quantity     float64         `json:"quantity"`
	PricePerUnit float64         `json:"pricePerUnit"` // in the transaction currency
	Currency     string          `json:"currency"`
	Fees         float64         `json:"fees"`
	Notes        *string         `json:"notes,omitempty"`
	Account      *string         `json:"account,omitempty"`     // source account column of the broker export
	TotalAmount  *float64        `json:"totalAmount,omitempty"` // Amount column, kept for cross-checking
}

type transactionJSON Transaction

// MarshalJSON encodes Date as a plain YYYY-MM-DD.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		transactionJSON
		Date string `json:"date"`
	}{
		transactionJSON: transactionJSON(t),
		Date:            t.Date.UTC().Format(DateLayout),
	})
}

// UnmarshalJSON accepts a YYYY-MM-DD or RFC3339 date.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	aux := struct {
		*transactionJSON
		Date string `json:"date"`
	}{
		transactionJSON: (*transactionJSON)(t),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		t.Date = time.Time{}
		return nil
	}

	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, aux.Date)
		if err != nil {
			return fmt.Errorf("invalid transaction date %q: %w", aux.Date, err)
		}
	}
	t.Date = date.UTC()
	return nil
}
