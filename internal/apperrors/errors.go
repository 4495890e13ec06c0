package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStateNotFound indicates that no portfolio state has been persisted yet.
	ErrStateNotFound = errors.New("portfolio state not found")
)

// Import errors cover the CSV ingestion pipeline.
var (
	// ErrInvalidCSVHeaders indicates that one or more required columns are absent.
	// No rows are validated when this error is returned.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrInvalidCSVFormat indicates that the file could not be read as semicolon-delimited CSV.
	ErrInvalidCSVFormat = errors.New("invalid CSV format")

	// ErrInvalidImportBatch indicates that a batch contains invalid rows.
	// Imports are all-or-nothing: the file must be corrected and uploaded again.
	ErrInvalidImportBatch = errors.New("import batch contains invalid rows")

	// ErrEmptyUpload indicates that the request carried no CSV content.
	ErrEmptyUpload = errors.New("no CSV content uploaded")
)

// Business logic errors represent validation failures.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidPrice indicates a price that is negative, NaN or infinite.
	ErrInvalidPrice = errors.New("invalid price")
)

// Operation failure errors represent system-level failures.
var (
	ErrFailedToLoadState           = errors.New("failed to load portfolio state")
	ErrFailedToSaveState           = errors.New("failed to save portfolio state")
	ErrFailedToImportTransactions  = errors.New("failed to import transactions")
	ErrFailedToRetrieveTransaction = errors.New("failed to retrieve transaction")
	ErrFailedToParseCSV            = errors.New("failed to parse CSV")
)
