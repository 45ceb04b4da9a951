package errors

const (
	HttpInternalError       = "internal_error"
	HttpInvalidJsonError    = "invalid_json"
	HttpInvalidRequestError = "invalid_request"
	HttpInvalidPeriodError  = "invalid_period"
	HttpItemNotFoundError   = "item_not_found"
	HttpUnsupportedFormat   = "unsupported_format"
)

// ErrorResponse is the error response body shared by every endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
