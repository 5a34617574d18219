package handler

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// FieldErrorResponse carries per-field validation or conflict messages so a
// client can render each one independently.
type FieldErrorResponse struct {
	NewErrors map[string]string `json:"newErrors"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"Operation successful"`
}
