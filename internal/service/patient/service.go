package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
	"github.com/clinichq/clinic-api/pkg/apperrors"
	"github.com/clinichq/clinic-api/pkg/validator"
)

type Service struct {
	repo   repository.PatientRepository
	logger zerolog.Logger
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo:   repo,
		logger: log.With().Str("service", "patient").Logger(),
	}
}

// Create persists a new patient. The duplicate pre-check is
// best-effort; the unique index on custom_id closes the race, and the
// resulting duplicate-key error maps to the same Conflict kind.
func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) error {
	s.logger.Info().Msg("creating a new patient")

	if violations := validator.Check(req); len(violations) > 0 {
		return apperrors.Validation(validator.Describe(violations))
	}

	_, err := s.repo.FindByCustomID(ctx, req.CustomID)
	if err == nil {
		s.logger.Warn().Str("custom_id", req.CustomID).Msg("patient already exists")
		return apperrors.Conflict(fmt.Sprintf("Patient with custom_id %s already exists", req.CustomID))
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return apperrors.Store("Failed to add patient in the system", err)
	}

	patient := &model.Patient{
		CustomID: req.CustomID,
		Name:     req.Name,
		DOB:      req.DOB,
		Address:  req.Address,
		PhoneNo:  req.PhoneNo,
		Email:    req.Email,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.Conflict(fmt.Sprintf("Patient with custom_id %s already exists", req.CustomID))
		}
		s.logger.Error().Err(err).Msg("error creating patient")
		return apperrors.Store("Failed to add patient in the system", err)
	}

	s.logger.Info().Str("id", patient.ID.Hex()).Msg("patient created")
	return nil
}

// List returns all patients, filtered by a case-insensitive substring
// search across name, phone_no and custom_id when term is non-empty.
func (s *Service) List(ctx context.Context, term string) ([]*model.Patient, error) {
	patients, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Msg("error fetching patients")
		return nil, apperrors.Store("Failed to fetch patients", err)
	}
	return patients, nil
}

func (s *Service) Get(ctx context.Context, customID string) (*model.Patient, error) {
	patient, err := s.repo.FindByCustomID(ctx, customID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Patient with custom_id %s not found", customID))
		}
		s.logger.Error().Err(err).Str("custom_id", customID).Msg("error fetching patient")
		return nil, apperrors.Store("Failed to fetch patient", err)
	}
	return patient, nil
}

// Update applies a partial merge: only the fields supplied in the
// request change, everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, customID string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if violations := validator.Check(req); len(violations) > 0 {
		return nil, apperrors.Validation(validator.Describe(violations))
	}

	patient, err := s.repo.Update(ctx, customID, req.Fields())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Patient with custom_id %s not found", customID))
		}
		s.logger.Error().Err(err).Str("custom_id", customID).Msg("error updating patient")
		return nil, apperrors.Store("Failed to update patient", err)
	}

	return patient, nil
}

func (s *Service) Delete(ctx context.Context, customID string) error {
	if err := s.repo.Delete(ctx, customID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("Patient with custom_id %s not found", customID))
		}
		s.logger.Error().Err(err).Str("custom_id", customID).Msg("error deleting patient")
		return apperrors.Store("Failed to delete patient", err)
	}
	return nil
}
