package dto

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}
