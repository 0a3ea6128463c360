package service

import (
	"context"

	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
)

// TeamService handles team member operations.
type TeamService interface {
	ListPublic(ctx context.Context) ([]model.TeamMember, error)
	ListAll(ctx context.Context) ([]model.TeamMember, error)
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id uint) error
}

type teamService struct {
	repo repository.TeamRepository
}

// NewTeamService creates a new team service.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) ListPublic(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx, true)
}

func (s *teamService) ListAll(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx, false)
}

func (s *teamService) Create(ctx context.Context, member *model.TeamMember) error {
	return s.repo.Create(ctx, member)
}

func (s *teamService) Update(ctx context.Context, member *model.TeamMember) error {
	return s.repo.Update(ctx, member)
}

func (s *teamService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
