package service

import (
	"maps"
	"sync"
	"time"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// PriceService holds the static price mapping used for valuation.
// Prices live in memory only and are never persisted.
type PriceService struct {
	mu          sync.RWMutex
	prices      model.PriceMap
	lastUpdated time.Time
}

// NewPriceService creates a PriceService holding a copy of initial.
func NewPriceService(initial model.PriceMap) *PriceService {
	s := &PriceService{}
	s.replace(initial)
	return s
}

// Prices returns a copy of the current mapping.
func (s *PriceService) Prices() model.PriceMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.prices)
}

// Snapshot returns the current mapping and the time it was last replaced.
func (s *PriceService) Snapshot() model.PriceSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.PriceSnapshot{
		Prices:      maps.Clone(s.prices),
		LastUpdated: s.lastUpdated,
	}
}

// SetPrices replaces the whole mapping. The cash ticker is always priced at 1.
func (s *PriceService) SetPrices(prices model.PriceMap) model.PriceSnapshot {
	s.replace(prices)
	return s.Snapshot()
}

func (s *PriceService) replace(prices model.PriceMap) {
	next := make(model.PriceMap, len(prices)+1)
	maps.Copy(next, prices)
	next[CashTicker] = 1

	s.mu.Lock()
	s.prices = next
	s.lastUpdated = time.Now().UTC()
	s.mu.Unlock()
}
