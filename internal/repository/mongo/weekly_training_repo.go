package mongo

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/repository"
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const weeklyTrainingCollectionName = "sesiones_semanales"

// mongoWeeklyTrainingRepository implements repository.WeeklyTrainingRepository
type mongoWeeklyTrainingRepository struct {
	collection *mongo.Collection
}

// NewMongoWeeklyTrainingRepository creates a new WeeklyTraining repository.
func NewMongoWeeklyTrainingRepository(db *mongo.Database) repository.WeeklyTrainingRepository {
	return &mongoWeeklyTrainingRepository{
		collection: db.Collection(weeklyTrainingCollectionName),
	}
}

func (r *mongoWeeklyTrainingRepository) InsertMany(ctx context.Context, weeks []domain.WeeklyTraining) error {
	if len(weeks) == 0 {
		return nil
	}
	docs := make([]interface{}, len(weeks))
	for i := range weeks {
		docs[i] = weeks[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByMesocycleID retrieves the weeks of one mesocycle, ordered by week number.
func (r *mongoWeeklyTrainingRepository) GetByMesocycleID(ctx context.Context, mesocycleID int) ([]domain.WeeklyTraining, error) {
	filter := bson.M{"mesociclo_id": mesocycleID}
	findOptions := options.Find().SetSort(bson.D{{Key: "semana", Value: 1}, {Key: "id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	weeks := []domain.WeeklyTraining{}
	if err = cursor.All(ctx, &weeks); err != nil {
		return nil, err
	}
	// Return empty slice if no weeks found (not an error)
	return weeks, nil
}

func (r *mongoWeeklyTrainingRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureWeeklyTrainingIndexes creates necessary indexes. Call during startup.
func EnsureWeeklyTrainingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mesociclo_id", Value: 1}, {Key: "semana", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
