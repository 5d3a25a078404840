package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
	"github.com/clinichq/clinic-api/pkg/apperrors"
	"github.com/clinichq/clinic-api/pkg/validator"
)

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	branches repository.BranchRepository
	logger   zerolog.Logger
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, branches repository.BranchRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		branches: branches,
		logger:   log.With().Str("service", "appointment").Logger(),
	}
}

// Create persists a new appointment. The referenced patient and
// branch ids are not checked for existence; a dangling reference
// resolves to a null join on read.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) error {
	s.logger.Info().Msg("creating a new appointment")

	if violations := validator.Check(req); len(violations) > 0 {
		return apperrors.Validation(validator.Describe(violations))
	}

	patientID, err := primitive.ObjectIDFromHex(req.PatientID)
	if err != nil {
		return apperrors.Validation("invalid patient ID")
	}
	branchID, err := primitive.ObjectIDFromHex(req.BranchID)
	if err != nil {
		return apperrors.Validation("invalid branch ID")
	}

	status := model.AppointmentStatus(req.Status)
	if status == "" {
		status = model.AppointmentStatusUpcoming
	}

	appointment := &model.Appointment{
		PatientID: patientID,
		BranchID:  branchID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		Status:    status,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.logger.Error().Err(err).Msg("error creating appointment")
		return apperrors.Store("Failed to create appointment", err)
	}

	s.logger.Info().Str("id", appointment.ID.Hex()).Msg("appointment created")
	return nil
}

// ListWeek returns all appointments whose start_time falls within the
// Sunday-to-Saturday week containing date, with patient and branch
// joined in. The date must be a strict YYYY-MM-DD calendar date.
func (s *Service) ListWeek(ctx context.Context, date string) ([]*model.Appointment, Window, error) {
	parsed, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		s.logger.Warn().Str("date", date).Msg("invalid date format")
		return nil, Window{}, apperrors.Validation("Invalid date format. Use YYYY-MM-DD.")
	}

	window := WeekOf(parsed)
	s.logger.Info().Str("window", window.String()).Msg("fetching appointments for week")

	appointments, err := s.repo.FindBetween(ctx, window.Start, window.End)
	if err != nil {
		s.logger.Error().Err(err).Msg("error fetching appointments")
		return nil, Window{}, apperrors.Store("Failed to fetch appointments", err)
	}

	for _, appointment := range appointments {
		s.attachRefs(ctx, appointment)
	}
	return appointments, window, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid appointment ID")
	}

	appointment, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Appointment #%s not found", id))
		}
		s.logger.Error().Err(err).Str("id", id).Msg("error fetching appointment")
		return nil, apperrors.Store("Failed to fetch appointment", err)
	}

	s.attachRefs(ctx, appointment)
	return appointment, nil
}

// Update applies a partial merge and returns the joined post-update
// record.
func (s *Service) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid appointment ID")
	}

	if violations := validator.Check(req); len(violations) > 0 {
		return nil, apperrors.Validation(validator.Describe(violations))
	}

	appointment, err := s.repo.Update(ctx, oid, req.Fields())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Appointment #%s not found", id))
		}
		s.logger.Error().Err(err).Str("id", id).Msg("error updating appointment")
		return nil, apperrors.Store("Failed to update appointment", err)
	}

	s.attachRefs(ctx, appointment)
	return appointment, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("invalid appointment ID")
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("Appointment #%s not found", id))
		}
		s.logger.Error().Err(err).Str("id", id).Msg("error deleting appointment")
		return apperrors.Store("Failed to delete appointment", err)
	}
	return nil
}

// attachRefs resolves the patient and branch references with a
// secondary fetch. A missing target stays nil; no cascade exists.
func (s *Service) attachRefs(ctx context.Context, appointment *model.Appointment) {
	if patient, err := s.patients.FindByID(ctx, appointment.PatientID); err == nil {
		appointment.Patient = patient
	}
	if branch, err := s.branches.FindByID(ctx, appointment.BranchID); err == nil {
		appointment.Branch = branch
	}
}
