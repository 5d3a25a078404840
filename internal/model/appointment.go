package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "UPCOMING"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment references a Patient and a Branch by id. The references
// are non-owning: deleting either target does not cascade, and joined
// reads resolve a missing target to null.
//
// The appoitment_reason wire name keeps its historical spelling;
// existing clients depend on it.
type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	BranchID  primitive.ObjectID `bson:"branch_id" json:"branch_id"`
	StartTime time.Time          `bson:"start_time" json:"start_time"`
	EndTime   time.Time          `bson:"end_time" json:"end_time"`
	Reason    string             `bson:"appoitment_reason" json:"appoitment_reason"`
	Status    AppointmentStatus  `bson:"status" json:"status"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Attached on read, never persisted.
	Patient *Patient `bson:"-" json:"patient,omitempty"`
	Branch  *Branch  `bson:"-" json:"branch,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID string    `json:"patient_id" validate:"required"`
	BranchID  string    `json:"branch_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Reason    string    `json:"appoitment_reason" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=UPCOMING COMPLETED CANCELLED"`
	Notes     string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartTime *time.Time         `json:"start_time"`
	EndTime   *time.Time         `json:"end_time"`
	Reason    *string            `json:"appoitment_reason"`
	Status    *AppointmentStatus `json:"status" validate:"omitempty,oneof=UPCOMING COMPLETED CANCELLED"`
	Notes     *string            `json:"notes"`
}

func (r *UpdateAppointmentRequest) Fields() bson.M {
	fields := bson.M{}
	if r.StartTime != nil {
		fields["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		fields["end_time"] = *r.EndTime
	}
	if r.Reason != nil {
		fields["appoitment_reason"] = *r.Reason
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}
