package service

import (
	"context"

	"devfinder/internal/entity"
	"devfinder/internal/repository"
	"devfinder/internal/utils"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title       string
	Description string
	Salary      float64
	Mode        string
	Type        string
	Remote      string
	Stack       []string
	Benefits    []string
	Skills      []string
	RecruiterID uuid.UUID
}

type JobService struct {
	opportunities repository.OpportunityRepository
	users         repository.UserRepository
}

func NewJobService(opportunities repository.OpportunityRepository, users repository.UserRepository) *JobService {
	return &JobService{opportunities: opportunities, users: users}
}

func (s *JobService) Create(ctx context.Context, input CreateJobInput) (*entity.Opportunity, error) {
	recruiter, err := s.users.FindByID(ctx, input.RecruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil || recruiter.Role != entity.UserRoleRecruiter {
		return nil, ErrUnauthorized
	}

	opportunity := &entity.Opportunity{
		Title:       input.Title,
		Description: input.Description,
		Salary:      input.Salary,
		Mode:        input.Mode,
		Type:        input.Type,
		Remote:      input.Remote,
		Stack:       utils.JSONStringSlice(input.Stack),
		Benefits:    utils.JSONStringSlice(input.Benefits),
		Skills:      utils.JSONStringSlice(input.Skills),
		RecruiterID: input.RecruiterID,
	}
	if err := s.opportunities.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// Apply marks an opportunity as applied to by a candidate. Missing
// jobs surface as unauthorized so their existence is not leaked.
func (s *JobService) Apply(ctx context.Context, opportunityID uuid.UUID, candidateID uuid.UUID) error {
	opportunity, err := s.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		return err
	}
	if opportunity == nil {
		return ErrUnauthorized
	}
	return s.opportunities.Assign(ctx, opportunityID, candidateID)
}

func (s *JobService) Delete(ctx context.Context, jobID uuid.UUID, recruiterID uuid.UUID) error {
	opportunity, err := s.opportunities.FindOwned(ctx, jobID, recruiterID)
	if err != nil {
		return err
	}
	if opportunity == nil {
		return ErrUnauthorized
	}
	return s.opportunities.Delete(ctx, jobID)
}

func (s *JobService) List(ctx context.Context, limit, offset int) ([]entity.Opportunity, error) {
	return s.opportunities.List(ctx, limit, offset)
}
