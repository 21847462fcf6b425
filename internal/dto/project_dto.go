package dto

import (
	"time"

	"devfinder/internal/entity"
	"devfinder/internal/utils"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"max=2000"`
	Link        string   `json:"link" validate:"required,url"`
	Repository  *string  `json:"repository" validate:"omitempty,url"`
	Stack       []string `json:"stack"`
}

type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Link        *string  `json:"link" validate:"omitempty,url"`
	Repository  *string  `json:"repository" validate:"omitempty,url"`
	Stack       []string `json:"stack"`
	Images      []string `json:"images"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Repository  *string   `json:"repository"`
	Stack       []string  `json:"stack"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProjectListResponse struct {
	Message  string            `json:"message"`
	Projects []ProjectResponse `json:"projects"`
}

func ProjectResponseFromEntity(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID.String(),
		Title:       project.Title,
		Description: project.Description,
		Link:        project.Link,
		Repository:  project.Repository,
		Stack:       utils.StringSliceFromJSON(project.Stack),
		Images:      utils.StringSliceFromJSON(project.Images),
		CreatedAt:   project.CreatedAt,
	}
}

func ProjectResponsesFromEntities(projects []entity.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ProjectResponseFromEntity(&projects[i]))
	}
	return responses
}
