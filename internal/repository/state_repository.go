package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// StateKey is the fixed storage identifier of the portfolio blob.
const StateKey = "portfolio-storage"

// StateRepository stores the portfolio state as a single JSON blob per key
// in the app_state table.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new StateRepository with the provided database connection.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load retrieves the state stored under key together with the time it was saved.
// Returns apperrors.ErrStateNotFound when nothing has been saved yet.
func (r *StateRepository) Load(ctx context.Context, key string) (model.PersistedState, time.Time, error) {
	var data, updatedAtStr string

	err := r.db.QueryRowContext(ctx, `SELECT data, updated_at FROM app_state WHERE key = ?`, key).
		Scan(&data, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PersistedState{}, time.Time{}, apperrors.ErrStateNotFound
	}
	if err != nil {
		return model.PersistedState{}, time.Time{}, fmt.Errorf("failed to query app_state table: %w", err)
	}

	var state model.PersistedState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return model.PersistedState{}, time.Time{}, fmt.Errorf("failed to decode state %q: %w", key, err)
	}

	updatedAt, err := ParseTime(updatedAtStr)
	if err != nil {
		return model.PersistedState{}, time.Time{}, err
	}

	return state, updatedAt, nil
}

// Save writes state under key, replacing any previous blob.
func (r *StateRepository) Save(ctx context.Context, key string, state model.PersistedState) error {
	if state.Transactions == nil {
		state.Transactions = []model.Transaction{}
	}
	if state.Holdings == nil {
		state.Holdings = []model.Holding{}
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state %q: %w", key, err)
	}

	query := `
		INSERT INTO app_state (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query, key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save app_state %q: %w", key, err)
	}

	return nil
}
