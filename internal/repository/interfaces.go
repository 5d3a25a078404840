package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinichq/clinic-api/internal/model"
)

// Sentinel errors the service layer maps onto failure kinds.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Patient, error)
	FindByCustomID(ctx context.Context, customID string) (*model.Patient, error)
	// Search returns all patients, or those whose name, phone_no or
	// custom_id contains the term (case-insensitive) when term is
	// non-empty.
	Search(ctx context.Context, term string) ([]*model.Patient, error)
	Update(ctx context.Context, customID string, fields bson.M) (*model.Patient, error)
	Delete(ctx context.Context, customID string) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Appointment, error)
	// FindBetween returns appointments whose start_time falls within
	// [start, end], both bounds inclusive.
	FindBetween(ctx context.Context, start, end time.Time) ([]*model.Appointment, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Branch, error)
	List(ctx context.Context) ([]*model.Branch, error)
}
