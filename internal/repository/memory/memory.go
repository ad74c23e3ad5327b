// Package memory keeps the catalog collections in process memory. It backs
// `database.driver: memory` for local runs and the service and API tests.
package memory

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/repository"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the three collections. Documents are copied on the way in and out so
// callers never share slices with the store.
type Store struct {
	mu         sync.RWMutex
	mesocycles []domain.Mesocycle
	weeks      []domain.WeeklyTraining
	plans      []domain.FullPlan
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Mesocycles returns the mesociclos collection view.
func (s *Store) Mesocycles() repository.MesocycleRepository { return &mesocycleRepository{s} }

// WeeklyTrainings returns the sesiones_semanales collection view.
func (s *Store) WeeklyTrainings() repository.WeeklyTrainingRepository {
	return &weeklyTrainingRepository{s}
}

// Plans returns the planificaciones collection view.
func (s *Store) Plans() repository.PlanRepository { return &planRepository{s} }

type mesocycleRepository struct{ s *Store }

func (r *mesocycleRepository) InsertMany(ctx context.Context, mesocycles []domain.Mesocycle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Mirrors the unique index on mesociclos.id.
	for _, m := range mesocycles {
		for _, existing := range r.s.mesocycles {
			if existing.ID == m.ID {
				return errors.New("duplicate mesocycle id")
			}
		}
	}
	r.s.mesocycles = append(r.s.mesocycles, mesocycles...)
	return nil
}

func (r *mesocycleRepository) List(ctx context.Context) ([]domain.Mesocycle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	out := append([]domain.Mesocycle{}, r.s.mesocycles...)
	r.s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mesocycleRepository) GetByID(ctx context.Context, id int) (*domain.Mesocycle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.mesocycles {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mesocycleRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.mesocycles)), nil
}

type weeklyTrainingRepository struct{ s *Store }

func (r *weeklyTrainingRepository) InsertMany(ctx context.Context, weeks []domain.WeeklyTraining) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range weeks {
		r.s.weeks = append(r.s.weeks, copyWeek(w))
	}
	return nil
}

func (r *weeklyTrainingRepository) GetByMesocycleID(ctx context.Context, mesocycleID int) ([]domain.WeeklyTraining, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	out := []domain.WeeklyTraining{}
	for _, w := range r.s.weeks {
		if w.MesocycleID == mesocycleID {
			out = append(out, copyWeek(w))
		}
	}
	r.s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out, nil
}

func (r *weeklyTrainingRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.weeks)), nil
}

type planRepository struct{ s *Store }

func (r *planRepository) Create(ctx context.Context, plan *domain.FullPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if plan.Title == "" {
		return errors.New("plan requires a title")
	}
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.plans = append(r.s.plans, copyPlan(*plan))
	return nil
}

func (r *planRepository) GetFirst(ctx context.Context) (*domain.FullPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if len(r.s.plans) == 0 {
		return nil, repository.ErrNotFound
	}
	first := r.s.plans[0]
	for _, p := range r.s.plans[1:] {
		if p.CreatedAt.Before(first.CreatedAt) {
			first = p
		}
	}
	out := copyPlan(first)
	return &out, nil
}

func (r *planRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.plans)), nil
}

func copyWeek(w domain.WeeklyTraining) domain.WeeklyTraining {
	sessions := make([]domain.Session, len(w.Sessions))
	for i, s := range w.Sessions {
		s.Exercises = append([]domain.Exercise{}, s.Exercises...)
		sessions[i] = s
	}
	w.Sessions = sessions
	return w
}

func copyPlan(p domain.FullPlan) domain.FullPlan {
	p.Mesocycles = append([]domain.Mesocycle{}, p.Mesocycles...)
	p.BasicMaterial = append([]string{}, p.BasicMaterial...)
	return p
}
