package service

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/metrics"
	"alcyxob/football-training/internal/repository"
	"alcyxob/football-training/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// --- Error Definitions ---
var (
	ErrMesocycleNotFound = errors.New("mesocycle not found")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrInvalidPlan       = errors.New("plan validation failed")

	// ErrStoreFailure wraps every document store error so callers can tell "broken"
	// apart from "empty".
	ErrStoreFailure = errors.New("document store failure")
)

// --- Service Interface ---
type CatalogService interface {
	ListMesocycles(ctx context.Context) ([]domain.Mesocycle, error)
	GetMesocycle(ctx context.Context, id int) (*domain.Mesocycle, error)
	ListWeeklyTraining(ctx context.Context, mesocycleID int) ([]domain.WeeklyTraining, error)
	GetMesocycleDetail(ctx context.Context, id int) (*domain.MesocycleDetail, error)
	GetFullPlan(ctx context.Context) (*domain.FullPlan, error)
	CreateFullPlan(ctx context.Context, plan *domain.FullPlan) (*domain.FullPlan, error)
	// Seed inserts the program dataset unless mesocycles already exist. seeded is false
	// when the call was a no-op.
	Seed(ctx context.Context) (seeded bool, err error)
	SeedStatus() SeedStatus
	BasicMaterial() []string
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	mesocycleRepo repository.MesocycleRepository
	weeklyRepo    repository.WeeklyTrainingRepository
	planRepo      repository.PlanRepository
	tx            repository.Transactor
	fileStorage   storage.FileStorage // nil disables image resolution
	presignExpiry time.Duration
	seed          *seedTracker
}

// NewCatalogService creates a new instance of catalogService. tx may be nil, in which
// case seeding runs without a transaction.
func NewCatalogService(
	mesocycleRepo repository.MesocycleRepository,
	weeklyRepo repository.WeeklyTrainingRepository,
	planRepo repository.PlanRepository,
	tx repository.Transactor,
	fileStorage storage.FileStorage,
	presignExpiry time.Duration,
) CatalogService {
	if tx == nil {
		tx = repository.DirectTransactor{}
	}
	return &catalogService{
		mesocycleRepo: mesocycleRepo,
		weeklyRepo:    weeklyRepo,
		planRepo:      planRepo,
		tx:            tx,
		fileStorage:   fileStorage,
		presignExpiry: presignExpiry,
		seed:          newSeedTracker(),
	}
}

// ListMesocycles retrieves every mesocycle ordered by id.
func (s *catalogService) ListMesocycles(ctx context.Context) ([]domain.Mesocycle, error) {
	mesocycles, err := s.mesocycleRepo.List(ctx)
	if err != nil {
		return nil, s.storeFailure("list mesocycles", err)
	}
	return mesocycles, nil
}

// GetMesocycle retrieves a single mesocycle by its integer id.
func (s *catalogService) GetMesocycle(ctx context.Context, id int) (*domain.Mesocycle, error) {
	mesocycle, err := s.mesocycleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMesocycleNotFound
		}
		return nil, s.storeFailure("get mesocycle", err)
	}
	return mesocycle, nil
}

// ListWeeklyTraining retrieves the weeks of a mesocycle. Unknown ids yield an empty
// list, not ErrMesocycleNotFound.
func (s *catalogService) ListWeeklyTraining(ctx context.Context, mesocycleID int) ([]domain.WeeklyTraining, error) {
	weeks, err := s.weeklyRepo.GetByMesocycleID(ctx, mesocycleID)
	if err != nil {
		return nil, s.storeFailure("list weekly training", err)
	}
	if weeks == nil {
		weeks = []domain.WeeklyTraining{}
	}
	s.resolveImages(ctx, weeks)
	return weeks, nil
}

// GetMesocycleDetail composes a mesocycle, its static objectives and its weeks.
func (s *catalogService) GetMesocycleDetail(ctx context.Context, id int) (*domain.MesocycleDetail, error) {
	mesocycle, err := s.GetMesocycle(ctx, id)
	if err != nil {
		return nil, err
	}
	weeks, err := s.ListWeeklyTraining(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.MesocycleDetail{
		Mesocycle:       *mesocycle,
		Objectives:      objectivesFor(id),
		WeeklyTrainings: weeks,
	}, nil
}

// GetFullPlan retrieves the program plan. If several exist, the earliest created wins.
func (s *catalogService) GetFullPlan(ctx context.Context) (*domain.FullPlan, error) {
	plan, err := s.planRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, s.storeFailure("get full plan", err)
	}
	return plan, nil
}

// CreateFullPlan inserts plan as a new document. Nothing prevents a second plan.
func (s *catalogService) CreateFullPlan(ctx context.Context, plan *domain.FullPlan) (*domain.FullPlan, error) {
	if plan == nil || plan.Title == "" {
		return nil, ErrInvalidPlan
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, s.storeFailure("create full plan", err)
	}
	return plan, nil
}

// Seed inserts the mesocycles, the first weekly training and the plan as one unit.
// Without an atomic Transactor a failure after the first insert leaves a partial seed,
// reported through SeedStatus.
func (s *catalogService) Seed(ctx context.Context) (bool, error) {
	count, err := s.mesocycleRepo.Count(ctx)
	if err != nil {
		s.seed.begin()
		s.seed.fail(err, true)
		metrics.RecordSeedRun(metrics.SeedOutcomeFailed)
		return false, s.storeFailure("seed", err)
	}
	if count > 0 {
		present := s.presentSeedSteps(ctx)
		s.seed.observe(present)
		if len(present) < len(seedSteps) {
			log.Printf("WARN: Store holds a partial seed (present: %v), skipping initialization", present)
		} else {
			log.Println("INFO: Data already exists, skipping initialization")
		}
		metrics.RecordSeedRun(metrics.SeedOutcomeSkipped)
		return false, nil
	}

	s.seed.begin()
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		mesocycles := seedMesocycles()
		if err := s.mesocycleRepo.InsertMany(ctx, mesocycles); err != nil {
			return fmt.Errorf("inserting mesocycles: %w", err)
		}
		s.seed.stepDone(SeedStepMesocycles)

		if err := s.weeklyRepo.InsertMany(ctx, seedWeeklyTrainings()); err != nil {
			return fmt.Errorf("inserting weekly training: %w", err)
		}
		s.seed.stepDone(SeedStepWeeklyTrainings)

		if err := s.planRepo.Create(ctx, seedPlan(mesocycles)); err != nil {
			return fmt.Errorf("inserting plan: %w", err)
		}
		s.seed.stepDone(SeedStepPlan)
		return nil
	})
	if err != nil {
		s.seed.fail(err, s.tx.Atomic())
		metrics.RecordSeedRun(metrics.SeedOutcomeFailed)
		return false, s.storeFailure("seed", err)
	}

	s.seed.complete()
	metrics.RecordSeedRun(metrics.SeedOutcomeCompleted)
	log.Println("INFO: Data initialized successfully")
	return true, nil
}

// SeedStatus returns a snapshot of the last seed run of this process.
func (s *catalogService) SeedStatus() SeedStatus {
	return s.seed.snapshot()
}

// BasicMaterial returns the fixed equipment list.
func (s *catalogService) BasicMaterial() []string {
	return append([]string{}, basicMaterial...)
}

// presentSeedSteps reports which seed groups exist in the store. Count errors are
// logged and the group is treated as present, so a flaky store does not report a
// partial seed.
func (s *catalogService) presentSeedSteps(ctx context.Context) []SeedStep {
	present := []SeedStep{SeedStepMesocycles}

	weeks, err := s.weeklyRepo.Count(ctx)
	if err != nil {
		log.Printf("WARN: Could not count weekly training during seed check: %v", err)
	}
	if err != nil || weeks > 0 {
		present = append(present, SeedStepWeeklyTrainings)
	}

	plans, err := s.planRepo.Count(ctx)
	if err != nil {
		log.Printf("WARN: Could not count plans during seed check: %v", err)
	}
	if err != nil || plans > 0 {
		present = append(present, SeedStepPlan)
	}
	return present
}

// resolveImages replaces object-key image references with presigned URLs. Absolute
// URLs are left alone, as is any reference whose presign fails.
func (s *catalogService) resolveImages(ctx context.Context, weeks []domain.WeeklyTraining) {
	if s.fileStorage == nil {
		return
	}
	for i := range weeks {
		for j := range weeks[i].Sessions {
			session := &weeks[i].Sessions[j]
			if !storage.IsObjectKey(session.Image) {
				continue
			}
			url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, session.Image, s.presignExpiry)
			if err != nil {
				log.Printf("WARN: Keeping unresolved image '%s' for session %d: %v", session.Image, session.ID, err)
				continue
			}
			session.Image = url
		}
	}
}

// storeFailure logs and counts a store error and wraps it in ErrStoreFailure.
func (s *catalogService) storeFailure(operation string, err error) error {
	log.Printf("ERROR: %s: %v", operation, err)
	metrics.RecordStoreFailure(operation)
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, operation, err)
}
