package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ndewijer/portfolio-tracker/internal/api/response"
	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/brokercsv"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/service"
)

// ImportHandler handles broker CSV uploads.
type ImportHandler struct {
	portfolioService *service.PortfolioService
	maxUploadBytes   int64
}

// NewImportHandler creates a new ImportHandler. Uploads larger than
// maxUploadBytes are rejected.
func NewImportHandler(portfolioService *service.PortfolioService, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		portfolioService: portfolioService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// ImportResponse is returned after a successful import.
type ImportResponse struct {
	Result       model.ImportResult  `json:"result"`
	Transactions []model.Transaction `json:"transactions"`
}

// Template handles GET requests for a sample broker export.
//
// Endpoint: GET /api/import/template
// Response: 200 OK with text/csv attachment
func (h *ImportHandler) Template(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", brokercsv.TemplateFilename))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Nothing useful to do if the client has gone away
	w.Write(brokercsv.Template())
}

// Preview handles POST requests that parse and validate an export without importing it.
//
// Endpoint: POST /api/import/preview
// Request Body: raw CSV, or multipart/form-data with the file in field "file"
// Response: 200 OK with model.ImportPreview
// Error: 400 Bad Request if the upload is empty, a required column is missing or the file is not CSV
// Error: 413 Request Entity Too Large if the upload exceeds the configured limit
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	body, err := readUpload(w, r, h.maxUploadBytes)
	if err != nil {
		respondUploadError(w, err)
		return
	}

	preview, err := h.portfolioService.PreviewImport(r.Context(), body)
	if err != nil {
		respondParseError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, preview)
}

// Import handles POST requests that parse an export and commit it.
// The import is all-or-nothing: when any row is invalid nothing is imported.
//
// Endpoint: POST /api/import
// Request Body: raw CSV, or multipart/form-data with the file in field "file"
// Response: 200 OK with ImportResponse (result counts and the updated history)
// Error: 400 Bad Request if the upload is empty, a required column is missing or the file is not CSV
// Error: 413 Request Entity Too Large if the upload exceeds the configured limit
// Error: 422 Unprocessable Entity with the preview rows as details if any row is invalid
// Error: 500 Internal Server Error if the new state cannot be saved
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := readUpload(w, r, h.maxUploadBytes)
	if err != nil {
		respondUploadError(w, err)
		return
	}

	result, rows, err := h.portfolioService.ImportCSV(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidImportBatch):
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrInvalidImportBatch.Error(), model.ImportPreview{
				Rows:         rows,
				ValidCount:   len(rows) - result.Errors,
				InvalidCount: result.Errors,
			})
		case errors.Is(err, apperrors.ErrFailedToSaveState):
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportTransactions.Error(), err.Error())
		default:
			respondParseError(w, err)
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, ImportResponse{
		Result:       result,
		Transactions: h.portfolioService.Transactions(),
	})
}

func respondParseError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrInvalidCSVHeaders) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSVHeaders.Error(), err.Error())
		return
	}
	response.RespondError(w, http.StatusBadRequest, apperrors.ErrFailedToParseCSV.Error(), err.Error())
}
