package handlers

import (
	"net/http"

	"github.com/ndewijer/portfolio-tracker/internal/api/response"
	"github.com/ndewijer/portfolio-tracker/internal/service"
)

// PortfolioHandler serves the derived holdings and totals.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Holdings handles GET requests for the valuated holdings.
//
// Endpoint: GET /api/holdings
// Response: 200 OK with array of model.HoldingWithValue ordered by value descending
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Holdings())
}

// Summary handles GET requests for the portfolio totals.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with model.PortfolioSummary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Summary())
}

// Allocation handles GET requests for the value split by asset class.
//
// Endpoint: GET /api/portfolio/allocation
// Response: 200 OK with array of model.AllocationSlice
func (h *PortfolioHandler) Allocation(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Allocation())
}
