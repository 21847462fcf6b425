package dto

import (
	"time"

	"devfinder/internal/entity"
	"devfinder/internal/utils"
)

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=8"`
	Description string   `json:"description" validate:"required,min=100"`
	Salary      float64  `json:"salary" validate:"required"`
	Mode        string   `json:"mode" validate:"required"`
	Type        string   `json:"type"`
	Remote      string   `json:"remote"`
	Stack       []string `json:"stack"`
	Benefits    []string `json:"benefits"`
	Skills      []string `json:"skills"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Salary      float64   `json:"salary"`
	Mode        string    `json:"mode"`
	Type        string    `json:"type"`
	Remote      string    `json:"remote"`
	Stack       []string  `json:"stack"`
	Benefits    []string  `json:"benefits"`
	Skills      []string  `json:"skills"`
	RecruiterID string    `json:"recruiterId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobListResponse struct {
	Message string        `json:"message"`
	Jobs    []JobResponse `json:"jobs"`
}

func JobResponseFromEntity(opportunity *entity.Opportunity) JobResponse {
	return JobResponse{
		ID:          opportunity.ID.String(),
		Title:       opportunity.Title,
		Description: opportunity.Description,
		Salary:      opportunity.Salary,
		Mode:        opportunity.Mode,
		Type:        opportunity.Type,
		Remote:      opportunity.Remote,
		Stack:       utils.StringSliceFromJSON(opportunity.Stack),
		Benefits:    utils.StringSliceFromJSON(opportunity.Benefits),
		Skills:      utils.StringSliceFromJSON(opportunity.Skills),
		RecruiterID: opportunity.RecruiterID.String(),
		CreatedAt:   opportunity.CreatedAt,
	}
}

func JobResponsesFromEntities(opportunities []entity.Opportunity) []JobResponse {
	responses := make([]JobResponse, 0, len(opportunities))
	for i := range opportunities {
		responses = append(responses, JobResponseFromEntity(&opportunities[i]))
	}
	return responses
}
