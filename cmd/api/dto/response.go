package dto

// MessageResponseDTO is the shared success envelope for mutation endpoints.
type MessageResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Post updated successfully."`
}

// ErrorResponseDTO is the shared error envelope. All failure responses carry
// success=false and a human-readable reason.
type ErrorResponseDTO struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Post not found."`
}
