package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown  = "UNKNOWN"
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Validation and input error codes
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Resource error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	ErrCodeResourceInUse       = "RESOURCE_IN_USE"
	ErrCodeDuplicateSlug       = "DUPLICATE_SLUG"
	ErrCodeDuplicateEmail      = "DUPLICATE_EMAIL"
)

// Cart guard error codes. These are client mistakes, not missing
// resources, so they map to 400 rather than 404.
const (
	ErrCodeInvalidProduct        = "INVALID_PRODUCT"
	ErrCodeInvalidQuantity       = "INVALID_QUANTITY"
	ErrCodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Domain codes not listed here fall through to 400 for INVALID_*
// prefixed codes and 500 otherwise.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeResourceInUse:       http.StatusConflict,
	ErrCodeDuplicateSlug:       http.StatusConflict,
	ErrCodeDuplicateEmail:      http.StatusConflict,

	ErrCodeInvalidProduct:        http.StatusBadRequest,
	ErrCodeInvalidQuantity:       http.StatusBadRequest,
	ErrCodeInsufficientInventory: http.StatusBadRequest,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if len(code) > 8 && code[:8] == "INVALID_" {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
