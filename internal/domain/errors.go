package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeNetwork      = "NETWORK_ERROR"
	ErrCodeDataFormat   = "DATA_FORMAT_ERROR"
	ErrCodeFallbackLoad = "FALLBACK_LOAD_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrEmptyInstitutionID = NewDomainError(ErrCodeValidation, "institution id is required")
	ErrInvalidRankingSpan = NewDomainError(ErrCodeValidation, "minRanking cannot exceed maxRanking")
)

// Not found errors
var (
	ErrInstitutionNotFound = NewDomainError(ErrCodeNotFound, "institution not found")
)

// Data-source errors. NetworkError and DataFormatError are caught at
// the data-source boundary and converted into a fallback attempt plus
// a user-visible message; FallbackLoadError is logged only.
var (
	ErrRemoteUnavailable = NewDomainError(ErrCodeNetwork, "directory service request failed")
	ErrUnexpectedShape   = NewDomainError(ErrCodeDataFormat, "directory response matched neither accepted shape")
	ErrFallbackUnusable  = NewDomainError(ErrCodeFallbackLoad, "bundled fallback dataset failed to load")
)
