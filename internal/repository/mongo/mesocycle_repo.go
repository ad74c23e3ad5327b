package mongo

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/repository"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mesocycleCollectionName = "mesociclos"

// mongoMesocycleRepository implements repository.MesocycleRepository
type mongoMesocycleRepository struct {
	collection *mongo.Collection
}

// NewMongoMesocycleRepository creates a new Mesocycle repository backed by MongoDB.
func NewMongoMesocycleRepository(db *mongo.Database) repository.MesocycleRepository {
	return &mongoMesocycleRepository{
		collection: db.Collection(mesocycleCollectionName),
	}
}

// InsertMany inserts all mesocycles in one round trip.
func (r *mongoMesocycleRepository) InsertMany(ctx context.Context, mesocycles []domain.Mesocycle) error {
	if len(mesocycles) == 0 {
		return nil
	}
	docs := make([]interface{}, len(mesocycles))
	for i := range mesocycles {
		docs[i] = mesocycles[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// List retrieves every mesocycle ordered by its integer id.
func (r *mongoMesocycleRepository) List(ctx context.Context) ([]domain.Mesocycle, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	mesocycles := []domain.Mesocycle{}
	if err = cursor.All(ctx, &mesocycles); err != nil {
		return nil, err
	}
	return mesocycles, nil
}

// GetByID retrieves a mesocycle by its integer id field (not the document _id).
func (r *mongoMesocycleRepository) GetByID(ctx context.Context, id int) (*domain.Mesocycle, error) {
	var mesocycle domain.Mesocycle
	filter := bson.M{"id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&mesocycle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &mesocycle, nil
}

// Count returns the number of stored mesocycles.
func (r *mongoMesocycleRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureMesocycleIndexes creates necessary indexes for the mesociclos collection.
func EnsureMesocycleIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// A second concurrent seed fails here instead of duplicating mesocycles.
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("mesociclo_id_unique"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
