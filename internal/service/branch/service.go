package branch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
	"github.com/clinichq/clinic-api/pkg/apperrors"
	"github.com/clinichq/clinic-api/pkg/validator"
)

type Service struct {
	repo   repository.BranchRepository
	logger zerolog.Logger
}

func NewService(repo repository.BranchRepository) *Service {
	return &Service{
		repo:   repo,
		logger: log.With().Str("service", "branch").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateBranchRequest) (*model.Branch, error) {
	if violations := validator.Check(req); len(violations) > 0 {
		return nil, apperrors.Validation(validator.Describe(violations))
	}

	branch := &model.Branch{
		Name:    req.Name,
		Address: req.Address,
		PhoneNo: req.PhoneNo,
	}

	if err := s.repo.Create(ctx, branch); err != nil {
		s.logger.Error().Err(err).Msg("error creating branch")
		return nil, apperrors.Store("Failed to create branch", err)
	}
	return branch, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Branch, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("error listing branches")
		return nil, apperrors.Store("Failed to fetch branches", err)
	}
	return branches, nil
}
