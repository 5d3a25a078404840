package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is stored in the `patients` collection. CustomID is the
// caller-supplied natural key; all patient endpoints look up by it.
type Patient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomID  string             `bson:"custom_id" json:"custom_id"`
	Name      string             `bson:"name" json:"name"`
	DOB       string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNo   string             `bson:"phone_no" json:"phone_no"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreatePatientRequest struct {
	CustomID string `json:"custom_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	DOB      string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address  string `json:"address"`
	PhoneNo  string `json:"phone_no" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type UpdatePatientRequest struct {
	Name     *string `json:"name"`
	DOB      *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address  *string `json:"address"`
	PhoneNo  *string `json:"phone_no"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// Fields returns only the supplied fields as a $set document, so
// omitted fields keep their stored values.
func (r *UpdatePatientRequest) Fields() bson.M {
	fields := bson.M{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.DOB != nil {
		fields["dob"] = *r.DOB
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.PhoneNo != nil {
		fields["phone_no"] = *r.PhoneNo
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.IsActive != nil {
		fields["isActive"] = *r.IsActive
	}
	return fields
}
