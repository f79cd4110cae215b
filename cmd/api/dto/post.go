package dto

import "skilllink/models"

// BoardResponseDTO is the view-posts payload: both canonical collections,
// verbatim.
type BoardResponseDTO struct {
	Success  bool          `json:"success"`
	Offers   []models.Post `json:"offers"`
	Requests []models.Post `json:"requests"`
}

// PostInputDTO carries the mutable fields of a post for update and create.
type PostInputDTO struct {
	Skill       string `json:"skill" example:"Python"`
	Category    string `json:"category" example:"Programming"`
	Description string `json:"description" example:"Weekly beginner sessions."`
}
