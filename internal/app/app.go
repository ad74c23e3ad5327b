package app

import (
	"alcyxob/football-training/internal/config"
	"alcyxob/football-training/internal/repository"
	"alcyxob/football-training/internal/repository/memory"
	"alcyxob/football-training/internal/repository/mongo"
	"alcyxob/football-training/internal/service"
	"alcyxob/football-training/internal/storage"
	"context"
	"fmt"
	"log"
	"time"
)

// App bundles the catalog service with the resources backing it.
type App struct {
	CatalogService service.CatalogService

	closers []func() error
}

// New connects the configured store, builds optional media storage and returns the
// wired catalog service. Call Close when done.
func New(cfg config.Config) (*App, error) {
	a := &App{}

	var (
		mesocycleRepo repository.MesocycleRepository
		weeklyRepo    repository.WeeklyTrainingRepository
		planRepo      repository.PlanRepository
		tx            repository.Transactor
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Println("INFO: Using in-memory document store")
		store := memory.NewStore()
		mesocycleRepo = store.Mesocycles()
		weeklyRepo = store.WeeklyTrainings()
		planRepo = store.Plans()

	default:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.Timeout)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %w", err)
		}
		a.closers = append(a.closers, func() error {
			log.Println("INFO: Disconnecting MongoDB...")
			return mongo.DisconnectDB(dbClient)
		})
		appDB := dbClient.Database(cfg.Database.Name)
		log.Printf("INFO: Database connection established (%s).", cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		mongo.EnsureIndexes(indexCtx, appDB)
		cancel()

		mesocycleRepo = mongo.NewMongoMesocycleRepository(appDB)
		weeklyRepo = mongo.NewMongoWeeklyTrainingRepository(appDB)
		planRepo = mongo.NewMongoPlanRepository(appDB)
		if cfg.Database.UseTransactions {
			tx = mongo.NewMongoTransactor(dbClient)
		}
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		log.Println("INFO: Initializing file storage service...")
		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initializing S3 storage: %w", err)
		}
		fileStorage = s3Storage
	}

	a.CatalogService = service.NewCatalogService(mesocycleRepo, weeklyRepo, planRepo, tx, fileStorage, cfg.S3.PresignExpiry)
	return a, nil
}

// Close releases the store connection, if any.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("ERROR: Failed to close resource: %v", err)
		}
	}
	a.closers = nil
}
