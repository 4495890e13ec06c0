package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

func TestTransaction_MarshalJSON(t *testing.T) {
	notes := "first buy"
	tx := model.Transaction{
		ID:           "tx-1",
		Date:         time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		Ticker:       "BTC",
		Type:         model.TransactionTypeBuy,
		Quantity:     0.5,
		PricePerUnit: 50000,
		Currency:     "EUR",
		Notes:        &notes,
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"date":"2021-09-01"`) {
		t.Errorf("Expected plain date, got %s", got)
	}
	if strings.Count(got, `"date"`) != 1 {
		t.Errorf("Expected a single date field, got %s", got)
	}
	if !strings.Contains(got, `"ticker":"BTC"`) || !strings.Contains(got, `"notes":"first buy"`) {
		t.Errorf("Expected remaining fields to be encoded, got %s", got)
	}
	if strings.Contains(got, "account") {
		t.Errorf("Expected nil account to be omitted, got %s", got)
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	want := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"plain date", `{"id":"tx-1","date":"2021-09-01","ticker":"BTC"}`, want, false},
		{"RFC3339 timestamp", `{"id":"tx-1","date":"2021-09-01T00:00:00Z","ticker":"BTC"}`, want, false},
		{"missing date", `{"id":"tx-1","ticker":"BTC"}`, time.Time{}, false},
		{"invalid date", `{"id":"tx-1","date":"01-09-21","ticker":"BTC"}`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tx model.Transaction
			err := json.Unmarshal([]byte(tt.input), &tx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !tx.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", tx.Date, tt.want)
			}
			if tx.ID != "tx-1" || tx.Ticker != "BTC" {
				t.Errorf("Expected other fields decoded, got %+v", tx)
			}
		})
	}
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	amount := 692.66
	tx := model.Transaction{
		ID:          "tx-1",
		Date:        time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Ticker:      "AAPL",
		Type:        model.TransactionTypeSell,
		Quantity:    3,
		TotalAmount: &amount,
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}
	var got model.Transaction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() returned unexpected error: %v", err)
	}

	if !got.Date.Equal(tx.Date) || got.Type != tx.Type || got.TotalAmount == nil || *got.TotalAmount != amount {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, tx)
	}
}
