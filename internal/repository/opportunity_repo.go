package repository

import (
	"context"
	"errors"

	"devfinder/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	FindOwned(ctx context.Context, id uuid.UUID, recruiterID uuid.UUID) (*entity.Opportunity, error)
	List(ctx context.Context, limit, offset int) ([]entity.Opportunity, error)
	Assign(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *opportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&opportunity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) FindOwned(ctx context.Context, id uuid.UUID, recruiterID uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := r.db.WithContext(ctx).
		Where("id = ? AND recruiter_id = ?", id, recruiterID).
		First(&opportunity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) List(ctx context.Context, limit, offset int) ([]entity.Opportunity, error) {
	var opportunities []entity.Opportunity
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (r *opportunityRepository) Assign(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Opportunity{}).
		Where("id = ?", id).
		Update("candidate_id", candidateID).
		Error
}

func (r *opportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Opportunity{}, "id = ?", id).Error
}
