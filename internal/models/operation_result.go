package models

import "time"

// ErrorCode classifies a business error; values match the HTTP status they map to.
type ErrorCode int

const (
	ErrBadRequest          ErrorCode = 400
	ErrUnauthorized        ErrorCode = 401
	ErrForbidden           ErrorCode = 403
	ErrNotFound            ErrorCode = 404
	ErrInternalServerError ErrorCode = 500
)

// Error is a single business error carried by an OperationResult.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// OperationResult is the uniform envelope returned by every service operation.
// Callers must check IsError before reading Data; Data is undefined when
// IsError is true.
type OperationResult[T any] struct {
	Data    T       `json:"data"`
	IsError bool    `json:"isError"`
	Errors  []Error `json:"errors"`
}

// NewOperationResult creates an empty, successful result.
func NewOperationResult[T any]() *OperationResult[T] {
	return &OperationResult[T]{}
}

// AddError appends an error and marks the result as failed. Append-only:
// IsError never flips back to false.
func (r *OperationResult[T]) AddError(code ErrorCode, message string) {
	r.IsError = true
	r.Errors = append(r.Errors, Error{Code: code, Message: message})
}

// HasCode reports whether any accumulated error carries the given code.
func (r *OperationResult[T]) HasCode(code ErrorCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Status phrases used in error responses.
const (
	PhraseBadRequest          = "Bad request"
	PhraseUnauthorized        = "Unauthorized"
	PhraseForbidden           = "Forbidden"
	PhraseNotFound            = "Not found"
	PhraseInternalServerError = "Internal server error"
)

// ErrorResponse is the JSON body returned to clients for every failed request.
type ErrorResponse struct {
	StatusCode   int       `json:"statusCode"`
	StatusPhrase string    `json:"statusPhrase"`
	Errors       []string  `json:"errors"`
	TimeStamp    time.Time `json:"timeStamp"`
}

// NewErrorResponse builds a timestamped error body.
func NewErrorResponse(statusCode int, statusPhrase string, errs []string) ErrorResponse {
	return ErrorResponse{
		StatusCode:   statusCode,
		StatusPhrase: statusPhrase,
		Errors:       errs,
		TimeStamp:    time.Now().UTC(),
	}
}
