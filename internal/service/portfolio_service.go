package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/brokercsv"
	"github.com/ndewijer/portfolio-tracker/internal/logger"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/repository"
)

// PortfolioService handles portfolio business logic: importing broker
// exports into the transaction history and reading the derived holdings.
// It coordinates the in-memory state store, the state repository and the
// price service.
type PortfolioService struct {
	store        *Store
	stateRepo    *repository.StateRepository
	priceService *PriceService

	// importMu serializes read-apply-commit-save so concurrent confirmations
	// cannot lose each other's transactions.
	importMu sync.Mutex
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	store *Store,
	stateRepo *repository.StateRepository,
	priceService *PriceService,
) *PortfolioService {
	return &PortfolioService{
		store:        store,
		stateRepo:    stateRepo,
		priceService: priceService,
	}
}

// PreviewImport parses a broker CSV export and validates every row without
// touching the portfolio state.
//
// Returns an error wrapping apperrors.ErrInvalidCSVHeaders when a required
// column is missing, or apperrors.ErrInvalidCSVFormat on any other read failure.
func (s *PortfolioService) PreviewImport(ctx context.Context, r io.Reader) (model.ImportPreview, error) {
	rows, err := brokercsv.Parse(ctx, r)
	if err != nil {
		return model.ImportPreview{}, err
	}

	preview := model.ImportPreview{Rows: rows}
	for _, row := range rows {
		if row.IsValid {
			preview.ValidCount++
		} else {
			preview.InvalidCount++
		}
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Int("rows", len(rows)).
		Int("valid", preview.ValidCount).
		Int("invalid", preview.InvalidCount).
		Msg("import previewed")

	return preview, nil
}

// ConfirmImport commits a previewed batch.
//
// The batch is all-or-nothing: if any row is invalid nothing is imported and
// apperrors.ErrInvalidImportBatch is returned together with a result whose
// Errors field counts the invalid rows. Otherwise the valid rows are merged
// into the history, holdings are rebuilt, the store is committed and the new
// state is saved.
//
// A save failure is returned wrapped in apperrors.ErrFailedToSaveState; the
// committed in-memory state is kept.
func (s *PortfolioService) ConfirmImport(ctx context.Context, rows []model.ImportPreviewRow) (model.ImportResult, error) {
	incoming, invalid := TransactionsFromPreview(rows)
	if invalid > 0 {
		return model.ImportResult{Errors: invalid}, apperrors.ErrInvalidImportBatch
	}

	log := logger.FromContext(ctx)

	s.importMu.Lock()
	defer s.importMu.Unlock()

	next, result := ApplyImport(s.store.Snapshot(), incoming)
	if result.Imported == 0 {
		log.Info().Int("skipped", result.Skipped).Msg("import contained only duplicates")
		return result, nil
	}

	s.store.Commit(next)

	if err := s.stateRepo.Save(ctx, repository.StateKey, next); err != nil {
		log.Error().Err(err).Msg("failed to save portfolio state")
		return result, fmt.Errorf("%w: %w", apperrors.ErrFailedToSaveState, err)
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("holdings", len(next.Holdings)).
		Msg("import committed")

	return result, nil
}

// ImportCSV parses r and confirms it in one step. The parsed rows are returned
// alongside the result so callers can report per-row diagnostics.
func (s *PortfolioService) ImportCSV(ctx context.Context, r io.Reader) (model.ImportResult, []model.ImportPreviewRow, error) {
	preview, err := s.PreviewImport(ctx, r)
	if err != nil {
		return model.ImportResult{}, nil, err
	}

	result, err := s.ConfirmImport(ctx, preview.Rows)
	return result, preview.Rows, err
}

// Transactions returns the full history ordered by date ascending.
// Transactions on the same date keep their import order.
func (s *PortfolioService) Transactions() []model.Transaction {
	transactions := s.store.Snapshot().Transactions
	slices.SortStableFunc(transactions, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return transactions
}

// Transaction returns the transaction with the given ID or
// apperrors.ErrTransactionNotFound.
func (s *PortfolioService) Transaction(id string) (model.Transaction, error) {
	for _, tx := range s.store.Snapshot().Transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return model.Transaction{}, apperrors.ErrTransactionNotFound
}

// Holdings returns the current holdings valued against the price mapping,
// ordered by value descending.
func (s *PortfolioService) Holdings() []model.HoldingWithValue {
	return Valuate(s.store.Snapshot().Holdings, s.priceService.Prices())
}

// Summary returns the portfolio totals at current prices.
func (s *PortfolioService) Summary() model.PortfolioSummary {
	return Summarize(s.Holdings())
}

// Allocation returns the portfolio value split by asset class at current prices.
func (s *PortfolioService) Allocation() []model.AllocationSlice {
	return Allocate(s.Holdings())
}
