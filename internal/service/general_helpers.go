package service

import "github.com/ndewijer/portfolio-tracker/internal/model"

// dateLayout is the ISO date layout of transaction dates and dedup keys.
const dateLayout = model.DateLayout

// cloneState returns a copy whose slices can be modified without touching s.
func cloneState(s model.PersistedState) model.PersistedState {
	return model.PersistedState{
		Transactions: append([]model.Transaction{}, s.Transactions...),
		Holdings:     append([]model.Holding{}, s.Holdings...),
	}
}
