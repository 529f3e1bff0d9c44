package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Error codes the HTTP layer maps to non-500 statuses. All other
// failures fall through to an internal error response.
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeNoFileProvided  = "NO_FILE_PROVIDED"
)

// DomainError carries a machine-readable code alongside the message so
// the HTTP layer can map business failures to status codes.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrNoFileProvided  = NewDomainError(ErrCodeNoFileProvided, "No file uploaded")
)
