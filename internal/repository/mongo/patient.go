package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
)

type patientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) repository.PatientRepository {
	return &patientRepository{coll: db.Collection("patients")}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		patient.ID = id
	}
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *patientRepository) FindByCustomID(ctx context.Context, customID string) (*model.Patient, error) {
	return r.findOne(ctx, bson.M{"custom_id": customID})
}

func (r *patientRepository) findOne(ctx context.Context, filter bson.M) (*model.Patient, error) {
	var patient model.Patient
	err := r.coll.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// searchFilter builds the case-insensitive substring match across
// name, phone_no and custom_id. An empty term matches everything.
func searchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{"$or": []bson.M{
		{"name": re},
		{"phone_no": re},
		{"custom_id": re},
	}}
}

func (r *patientRepository) Search(ctx context.Context, term string) ([]*model.Patient, error) {
	cursor, err := r.coll.Find(ctx, searchFilter(term))
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	var patients []*model.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, customID string, fields bson.M) (*model.Patient, error) {
	fields["updatedAt"] = time.Now()

	var patient model.Patient
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"custom_id": customID},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Delete(ctx context.Context, customID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"custom_id": customID})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
