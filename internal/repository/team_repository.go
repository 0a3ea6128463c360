package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/model"
)

// TeamRepository defines persistence operations for team members.
type TeamRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.TeamMember, error)
	List(ctx context.Context, activeOnly bool) ([]model.TeamMember, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository builds a GORM-backed repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) Update(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TeamMember{}, id).Error
}

func (r *teamRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) List(ctx context.Context, activeOnly bool) ([]model.TeamMember, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var members []model.TeamMember
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
