package dto

// MessageResponse is the minimal success envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a single error string, the shape every failing
// endpoint responds with
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
