// Package store is the offline-only collection of plants and tasks used by
// the screens that do not talk to the backend. It is deliberately not
// synchronized with the API layer.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"canopy/internal/domain"
	"canopy/internal/logging"
	"canopy/internal/ports"
)

// AddPlantParams are the caller-provided fields for a new local plant
type AddPlantParams struct {
	Name            string
	Cultivar        string
	Category        string
	Environment     domain.GrowEnvironment
	Stage           domain.PlantStage
	ExpectedHarvest string
	Notes           string
	Recommendation  string
}

// Store holds plants and tasks in memory with synchronous mutations and
// derived queries computed on read. When a repository is attached, a
// snapshot is persisted after every mutation; load failures fall back to
// seed data.
type Store struct {
	mu     sync.Mutex
	plants []domain.LocalPlant
	tasks  []domain.Task
	repo   ports.StoreRepository
	lastID int64 // unix-milli of the last generated id, for uniqueness
}

// New creates a store seeded with fixture data
func New() *Store {
	return &Store{
		plants: seedPlants(),
		tasks:  seedTasks(),
	}
}

// NewWithRepository creates a store backed by repo. A previously saved
// snapshot replaces the seed data; an empty or failing repository leaves the
// seeds in place.
func NewWithRepository(ctx context.Context, repo ports.StoreRepository) *Store {
	s := New()
	s.repo = repo

	plants, tasks, err := repo.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load store snapshot, using seed data", "error", err)
		return s
	}
	if len(plants) > 0 || len(tasks) > 0 {
		s.plants = plants
		s.tasks = tasks
	}
	return s
}

// AddPlant constructs a new plant with a generated id and creation
// timestamp and appends it. It always succeeds; validation is the caller's
// concern.
func (s *Store) AddPlant(params AddPlantParams) domain.LocalPlant {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	plant := domain.LocalPlant{
		ID:              s.nextID(now),
		Name:            params.Name,
		Cultivar:        params.Cultivar,
		Category:        params.Category,
		Environment:     params.Environment,
		Stage:           params.Stage,
		ExpectedHarvest: params.ExpectedHarvest,
		Notes:           params.Notes,
		CreatedAt:       now,
		Recommendation:  params.Recommendation,
	}
	s.plants = append(s.plants, plant)
	s.persistLocked()

	logging.Logger.Info("Plant added to local store", "plant_id", plant.ID, "name", plant.Name)
	return plant
}

// nextID derives a unique, monotonically informative id from the current
// time. Callers must hold s.mu.
func (s *Store) nextID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("plant-%d", ms)
}

// RemovePlant removes the plant with the given id and cascades to remove
// all tasks referencing it. Unknown ids are a silent no-op.
func (s *Store) RemovePlant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plants := s.plants[:0]
	for _, p := range s.plants {
		if p.ID != id {
			plants = append(plants, p)
		}
	}
	s.plants = plants

	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.PlantID != id {
			tasks = append(tasks, t)
		}
	}
	s.tasks = tasks
	s.persistLocked()
}

// CompleteTask marks the task completed. Completing an already-completed
// task or an unknown id is a no-op.
func (s *Store) CompleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			if !s.tasks[i].Completed {
				s.tasks[i].Completed = true
				s.persistLocked()
			}
			return
		}
	}
}

// Plants returns a snapshot of all plants
func (s *Store) Plants() []domain.LocalPlant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LocalPlant(nil), s.plants...)
}

// Tasks returns a snapshot of all tasks
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

// ActivePlants returns plants that have not reached the curing stage
func (s *Store) ActivePlants() []domain.LocalPlant {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []domain.LocalPlant
	for _, p := range s.plants {
		if p.Stage != domain.StageCuring {
			active = append(active, p)
		}
	}
	return active
}

// TasksDueToday returns incomplete tasks in the today bucket
func (s *Store) TasksDueToday() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []domain.Task
	for _, t := range s.tasks {
		if t.Due == domain.DueToday && !t.Completed {
			due = append(due, t)
		}
	}
	return due
}

// PendingTasks returns all incomplete tasks
func (s *Store) PendingTasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []domain.Task
	for _, t := range s.tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

// TasksByBucket groups incomplete tasks by due-bucket, today first
func (s *Store) TasksByBucket() map[domain.DueBucket][]domain.Task {
	pending := s.PendingTasks()

	grouped := make(map[domain.DueBucket][]domain.Task)
	for _, t := range pending {
		grouped[t.Due] = append(grouped[t.Due], t)
	}
	return grouped
}

// Buckets returns the due-buckets present in the store, in display order
func (s *Store) Buckets() []domain.DueBucket {
	grouped := s.TasksByBucket()

	buckets := make([]domain.DueBucket, 0, len(grouped))
	for b := range grouped {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].SortKey() < buckets[j].SortKey()
	})
	return buckets
}

// persistLocked saves a snapshot when a repository is attached. Callers
// must hold s.mu. Persistence failures are logged, not surfaced; the
// in-memory state remains authoritative.
func (s *Store) persistLocked() {
	if s.repo == nil {
		return
	}
	plants := append([]domain.LocalPlant(nil), s.plants...)
	tasks := append([]domain.Task(nil), s.tasks...)
	if err := s.repo.Save(context.Background(), plants, tasks); err != nil {
		logging.Logger.Error("Failed to persist store snapshot", "error", err)
	}
}
