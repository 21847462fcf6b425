package service

import (
	"context"
	"fmt"
	"time"

	"devfinder/internal/entity"
	"devfinder/internal/repository"
	"devfinder/internal/utils"

	"github.com/google/uuid"
)

type ImageUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

type CreateProjectInput struct {
	Title       string
	Description string
	Link        string
	Repository  *string
	Stack       []string
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
	Link        *string
	Repository  *string
	Stack       []string
	Images      []string
}

type ProjectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	images   ImageStore
	clock    Clock
}

func NewProjectService(
	projects repository.ProjectRepository,
	users repository.UserRepository,
	images ImageStore,
	clock Clock,
) *ProjectService {
	return &ProjectService{projects: projects, users: users, images: images, clock: clock}
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, input CreateProjectInput, uploads []ImageUpload) (*entity.Project, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	urls, err := s.uploadImages(ctx, userID, uploads)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Repository:  input.Repository,
		Stack:       utils.JSONStringSlice(input.Stack),
		Images:      utils.JSONStringSlice(urls),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) uploadImages(ctx context.Context, userID uuid.UUID, uploads []ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	if s.images == nil && len(uploads) > 0 {
		return nil, ErrUploadFailed
	}
	for _, upload := range uploads {
		key := fmt.Sprintf("%s-%d-%s", userID, s.now().UnixMilli(), upload.Name)
		url, err := s.images.Upload(ctx, key, upload.ContentType, upload.Data)
		if err != nil {
			return nil, ErrUploadFailed
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *ProjectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, userID uuid.UUID, projectID uuid.UUID, input UpdateProjectInput) error {
	project, err := s.projects.FindOwned(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrUnauthorized
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Link != nil {
		project.Link = *input.Link
	}
	if input.Repository != nil {
		project.Repository = input.Repository
	}
	if input.Stack != nil {
		project.Stack = utils.JSONStringSlice(input.Stack)
	}
	if input.Images != nil {
		project.Images = utils.JSONStringSlice(input.Images)
	}
	return s.projects.Update(ctx, project)
}

func (s *ProjectService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
