package repository

import (
	"alcyxob/football-training/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// MesocycleRepository defines access to the mesociclos collection.
type MesocycleRepository interface {
	InsertMany(ctx context.Context, mesocycles []domain.Mesocycle) error
	// List returns every mesocycle ordered by id.
	List(ctx context.Context) ([]domain.Mesocycle, error)
	GetByID(ctx context.Context, id int) (*domain.Mesocycle, error)
	Count(ctx context.Context) (int64, error)
}

// WeeklyTrainingRepository defines access to the sesiones_semanales collection.
type WeeklyTrainingRepository interface {
	InsertMany(ctx context.Context, weeks []domain.WeeklyTraining) error
	// GetByMesocycleID returns an empty slice, not ErrNotFound, when nothing matches.
	GetByMesocycleID(ctx context.Context, mesocycleID int) ([]domain.WeeklyTraining, error)
	Count(ctx context.Context) (int64, error)
}

// PlanRepository defines access to the planificaciones collection.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.FullPlan) error
	// GetFirst returns the earliest created plan. No uniqueness is enforced, so more than
	// one plan may exist.
	GetFirst(ctx context.Context) (*domain.FullPlan, error)
	Count(ctx context.Context) (int64, error)
}

// Transactor runs fn as one unit of work against the store.
type Transactor interface {
	// WithinTransaction calls fn with a context bound to the unit of work. Writes made
	// through that context are rolled back if fn returns an error, when Atomic is true.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether a failed unit of work leaves no partial writes behind.
	Atomic() bool
}

// DirectTransactor runs fn without any transaction. Writes performed before a failure
// stay in the store.
type DirectTransactor struct{}

func (DirectTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (DirectTransactor) Atomic() bool { return false }
