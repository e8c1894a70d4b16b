package utils

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of requests that answer with a status
// line instead of a document.
type MessageResponse struct {
	Message string `json:"message"`
}
