package mongo

import (
	"alcyxob/football-training/internal/repository"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// opTimeout, when positive, bounds every operation issued through the client.
func ConnectDB(uri string, opTimeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	if opTimeout > 0 {
		clientOptions.SetTimeout(opTimeout)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary: Connect succeeds even when the server is unreachable.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every catalog collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	EnsureMesocycleIndexes(ctx, db.Collection(mesocycleCollectionName))
	EnsureWeeklyTrainingIndexes(ctx, db.Collection(weeklyTrainingCollectionName))
	EnsurePlanIndexes(ctx, db.Collection(planCollectionName))
	log.Println("INFO: Index creation process completed.")
}

// mongoTransactor implements repository.Transactor with multi-document transactions.
// Transactions need a replica set or sharded cluster.
type mongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor returns a Transactor backed by client sessions.
func NewMongoTransactor(client *mongo.Client) repository.Transactor {
	return &mongoTransactor{client: client}
}

// WithinTransaction runs fn inside a transaction. The driver may call fn more than once
// on transient errors.
func (t *mongoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

func (t *mongoTransactor) Atomic() bool { return true }
