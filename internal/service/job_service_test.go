package service

import (
	"context"
	"sync"
	"testing"

	"devfinder/internal/entity"
	"devfinder/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpportunityRepo struct {
	mu            sync.Mutex
	opportunities map[uuid.UUID]*entity.Opportunity
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opportunities: make(map[uuid.UUID]*entity.Opportunity)}
}

func (r *fakeOpportunityRepo) Create(_ context.Context, opportunity *entity.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if opportunity.ID == uuid.Nil {
		opportunity.ID = uuid.New()
	}
	copied := *opportunity
	r.opportunities[opportunity.ID] = &copied
	return nil
}

func (r *fakeOpportunityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	opportunity, ok := r.opportunities[id]
	if !ok {
		return nil, nil
	}
	copied := *opportunity
	return &copied, nil
}

func (r *fakeOpportunityRepo) FindOwned(_ context.Context, id uuid.UUID, recruiterID uuid.UUID) (*entity.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	opportunity, ok := r.opportunities[id]
	if !ok || opportunity.RecruiterID != recruiterID {
		return nil, nil
	}
	copied := *opportunity
	return &copied, nil
}

func (r *fakeOpportunityRepo) List(_ context.Context, _, _ int) ([]entity.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entity.Opportunity, 0, len(r.opportunities))
	for _, opportunity := range r.opportunities {
		result = append(result, *opportunity)
	}
	return result, nil
}

func (r *fakeOpportunityRepo) Assign(_ context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	opportunity, ok := r.opportunities[id]
	if !ok {
		return nil
	}
	opportunity.CandidateID = &candidateID
	return nil
}

func (r *fakeOpportunityRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.opportunities, id)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Usuário Teste",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func validJobInput(recruiterID uuid.UUID) CreateJobInput {
	return CreateJobInput{
		Title:       "Desenvolvedor Go Pleno",
		Description: "Vaga para desenvolvedor backend com experiência em Go, PostgreSQL e serviços HTTP de alto volume.",
		Salary:      9000,
		Mode:        "CLT",
		Type:        "Pleno",
		Remote:      "Remoto",
		Stack:       []string{"go", "postgres"},
		Benefits:    []string{"vale refeição"},
		Skills:      []string{"apis"},
		RecruiterID: recruiterID,
	}
}

func TestJobCreate_ByRecruiter(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	opportunities := newFakeOpportunityRepo()
	svc := NewJobService(opportunities, users)
	recruiter := seedUser(t, users, entity.UserRoleRecruiter)

	opportunity, err := svc.Create(context.Background(), validJobInput(recruiter.ID))
	require.NoError(t, err)
	assert.Equal(t, recruiter.ID, opportunity.RecruiterID)
	assert.Equal(t, []string{"go", "postgres"}, utils.StringSliceFromJSON(opportunity.Stack))
}

func TestJobCreate_ByCandidateRejected(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewJobService(newFakeOpportunityRepo(), users)
	candidate := seedUser(t, users, entity.UserRoleCandidate)

	_, err := svc.Create(context.Background(), validJobInput(candidate.ID))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJobCreate_UnknownRecruiter(t *testing.T) {
	t.Parallel()

	svc := NewJobService(newFakeOpportunityRepo(), newFakeUserRepo())
	_, err := svc.Create(context.Background(), validJobInput(uuid.New()))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJobApply(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	opportunities := newFakeOpportunityRepo()
	svc := NewJobService(opportunities, users)
	recruiter := seedUser(t, users, entity.UserRoleRecruiter)
	candidate := seedUser(t, users, entity.UserRoleCandidate)

	opportunity, err := svc.Create(context.Background(), validJobInput(recruiter.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Apply(context.Background(), opportunity.ID, candidate.ID))

	stored, err := opportunities.FindByID(context.Background(), opportunity.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CandidateID)
	assert.Equal(t, candidate.ID, *stored.CandidateID)
}

func TestJobApply_UnknownJob(t *testing.T) {
	t.Parallel()

	svc := NewJobService(newFakeOpportunityRepo(), newFakeUserRepo())
	err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJobDelete_NotOwned(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	opportunities := newFakeOpportunityRepo()
	svc := NewJobService(opportunities, users)
	owner := seedUser(t, users, entity.UserRoleRecruiter)
	other := seedUser(t, users, entity.UserRoleRecruiter)

	opportunity, err := svc.Create(context.Background(), validJobInput(owner.ID))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), opportunity.ID, other.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.Delete(context.Background(), opportunity.ID, owner.ID))
	stored, err := opportunities.FindByID(context.Background(), opportunity.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
