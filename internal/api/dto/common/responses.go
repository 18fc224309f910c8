package common

// APIResponse is the standard wrapper for all API responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// FieldErrors maps a request field to the reasons it was rejected
type FieldErrors map[string][]string

// Standard error messages
const (
	ErrMsgValidation       = "Validation failed"
	ErrMsgNotFound         = "Resource not found"
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgUnauthorized     = "Unauthorized"
	ErrMsgTooManyRequests  = "Rate limit exceeded. Please try again later."
	ErrMsgInternalServer   = "Internal server error"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a new success response with a simple message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// NewValidationErrorResponse creates an error response listing rejected fields
func NewValidationErrorResponse(details FieldErrors) APIResponse {
	return APIResponse{
		Success: false,
		Error:   ErrMsgValidation,
		Details: details,
	}
}
