package handlers

import (
	"net/http"

	"github.com/ndewijer/portfolio-tracker/internal/api/request"
	"github.com/ndewijer/portfolio-tracker/internal/api/response"
	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/logger"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/service"
	"github.com/ndewijer/portfolio-tracker/internal/validation"
)

// PriceHandler handles the static price mapping used for valuation.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Prices handles GET requests for the current price mapping.
//
// Endpoint: GET /api/prices
// Response: 200 OK with model.PriceSnapshot
func (h *PriceHandler) Prices(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.priceService.Snapshot())
}

// SetPrices handles PUT requests replacing the whole price mapping.
// The cash ticker is always stored at 1 regardless of the request.
//
// Endpoint: PUT /api/prices
// Request Body: SetPricesRequest ({"prices": {"AAPL": 189.5}})
// Response: 200 OK with model.PriceSnapshot
// Error: 400 Bad Request if the body is malformed or a price is invalid
func (h *PriceHandler) SetPrices(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetPricesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetPrices(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPrice.Error(), err.Error())
		return
	}

	snapshot := h.priceService.SetPrices(model.PriceMap(req.Prices))

	log := logger.FromContext(r.Context())
	log.Info().Int("tickers", len(snapshot.Prices)).Msg("prices replaced")

	response.RespondJSON(w, http.StatusOK, snapshot)
}
