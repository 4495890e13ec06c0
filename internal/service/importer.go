package service

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// dedupKey identifies a transaction for duplicate detection.
// Two distinct same-day trades of equal size in the same ticker share a key;
// the second one is treated as a duplicate.
type dedupKey struct {
	date     string
	ticker   string
	quantity float64
}

func keyOf(tx model.Transaction) dedupKey {
	return dedupKey{
		date:     tx.Date.Format(dateLayout),
		ticker:   tx.Ticker,
		quantity: tx.Quantity,
	}
}

// Import merges incoming transactions into the existing history.
//
// An incoming transaction whose (date, ticker, quantity) matches an existing
// transaction is dropped and counted as skipped. Survivors are appended in
// input order. Only the existing history is consulted, so identical rows
// inside one batch are all imported. Import never fails.
func Import(existing, incoming []model.Transaction) (merged []model.Transaction, imported, skipped int) {
	seen := make(map[dedupKey]struct{}, len(existing))
	for _, tx := range existing {
		seen[keyOf(tx)] = struct{}{}
	}

	merged = slices.Clone(existing)
	for _, tx := range incoming {
		if _, dup := seen[keyOf(tx)]; dup {
			skipped++
			continue
		}
		merged = append(merged, tx)
		imported++
	}

	return merged, imported, skipped
}

// TransactionsFromPreview converts the valid preview rows into transactions.
// Invalid rows are excluded and counted in the second return value.
func TransactionsFromPreview(rows []model.ImportPreviewRow) ([]model.Transaction, int) {
	transactions := make([]model.Transaction, 0, len(rows))
	invalid := 0

	for _, row := range rows {
		if !row.IsValid {
			invalid++
			continue
		}

		date, err := time.Parse(dateLayout, *row.Date)
		if err != nil {
			invalid++
			continue
		}

		tx := model.Transaction{
			ID:           uuid.New().String(),
			Date:         date,
			Ticker:       *row.Ticker,
			Type:         *row.Type,
			Quantity:     *row.Quantity,
			PricePerUnit: *row.PricePerUnit,
			Currency:     row.Currency,
			Fees:         0,
			TotalAmount:  row.TotalAmount,
		}
		if row.Notes != "" {
			notes := row.Notes
			tx.Notes = &notes
		}
		if row.Account != "" {
			account := row.Account
			tx.Account = &account
		}
		transactions = append(transactions, tx)
	}

	return transactions, invalid
}

// ApplyImport is the state transition for a confirmed import: it merges the
// incoming transactions and rebuilds the holdings projection from the result.
// The input state is not modified.
func ApplyImport(state model.PersistedState, incoming []model.Transaction) (model.PersistedState, model.ImportResult) {
	merged, imported, skipped := Import(state.Transactions, incoming)

	next := model.PersistedState{
		Transactions: merged,
		Holdings:     RebuildHoldings(merged),
	}

	return next, model.ImportResult{Imported: imported, Skipped: skipped}
}
