package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/repository"
	"github.com/ndewijer/portfolio-tracker/internal/service"
)

// NewTestPortfolioService creates a PortfolioService over an empty portfolio
// and the seed price mapping.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return NewTestPortfolioServiceWithState(t, db, model.PersistedState{})
}

// NewTestPortfolioServiceWithState creates a PortfolioService whose store
// starts from state. The state is not written to the database.
func NewTestPortfolioServiceWithState(t *testing.T, db *sql.DB, state model.PersistedState) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		service.NewStore(state),
		repository.NewStateRepository(db),
		service.NewPriceService(service.SeedPrices()),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// SaveState writes state under the portfolio storage key.
func SaveState(t *testing.T, db *sql.DB, state model.PersistedState) {
	t.Helper()

	if err := repository.NewStateRepository(db).Save(context.Background(), repository.StateKey, state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}
}

// LoadState reads the state saved under the portfolio storage key.
func LoadState(t *testing.T, db *sql.DB) model.PersistedState {
	t.Helper()

	state, _, err := repository.NewStateRepository(db).Load(context.Background(), repository.StateKey)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	return state
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
