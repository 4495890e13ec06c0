package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/ndewijer/portfolio-tracker/internal/api/response"
	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
)

// uploadField is the multipart form field carrying the CSV file.
const uploadField = "file"

// parseJSON decodes the request body into T, rejecting unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	return req, nil
}

// readUpload returns the uploaded CSV content. It accepts either a
// multipart/form-data body with the file in the "file" field or the raw CSV
// as the request body. Bodies larger than maxBytes fail with
// *http.MaxBytesError and empty uploads with apperrors.ErrEmptyUpload.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*bytes.Reader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	var src io.Reader = r.Body
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile(uploadField)
		if err != nil {
			return nil, fmt.Errorf("%w: missing form field %q", apperrors.ErrEmptyUpload, uploadField)
		}
		defer file.Close()
		src = file
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}
	return bytes.NewReader(content), nil
}

// respondUploadError reports a readUpload failure: 413 when the size limit
// was hit, 400 otherwise.
func respondUploadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.RespondError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit", err.Error())
		return
	}
	if errors.Is(err, apperrors.ErrEmptyUpload) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrEmptyUpload.Error(), err.Error())
		return
	}
	response.RespondError(w, http.StatusBadRequest, "invalid upload", err.Error())
}
