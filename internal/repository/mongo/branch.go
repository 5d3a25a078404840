package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
)

type branchRepository struct {
	coll *mongo.Collection
}

func NewBranchRepository(db *mongo.Database) repository.BranchRepository {
	return &branchRepository{coll: db.Collection("branches")}
}

func (r *branchRepository) Create(ctx context.Context, branch *model.Branch) error {
	branch.CreatedAt = time.Now()
	branch.UpdatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, branch)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		branch.ID = id
	}
	return nil
}

func (r *branchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Branch, error) {
	var branch model.Branch
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&branch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return &branch, nil
}

func (r *branchRepository) List(ctx context.Context) ([]*model.Branch, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var branches []*model.Branch
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, fmt.Errorf("failed to decode branches: %w", err)
	}
	return branches, nil
}
