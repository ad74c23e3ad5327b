// internal/repository/mongo/training_plan_repo.go
package mongo

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/repository"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "planificaciones"

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new FullPlan repository.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Create inserts a new plan. A missing ID or creation time is filled in.
func (r *mongoPlanRepository) Create(ctx context.Context, plan *domain.FullPlan) error {
	if plan.Title == "" {
		return errors.New("plan requires a title")
	}
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// GetFirst retrieves the earliest created plan.
func (r *mongoPlanRepository) GetFirst(ctx context.Context) (*domain.FullPlan, error) {
	var plan domain.FullPlan
	findOptions := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	err := r.collection.FindOne(ctx, bson.M{}, findOptions).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoPlanRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsurePlanIndexes creates necessary indexes. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
