// Package fixture is the offline backend: static tables plus synthesized
// responses, with artificial latency to preserve realistic UX timing during
// development.
//
// Created plants are inserted into the in-process plant-detail table, so a
// follow-up detail fetch sees them. Created grows are NOT reflected in
// subsequent grow listings; the grow table is stateless by choice, matching
// the observed behavior of the reference client. Nothing here touches the
// local store.
package fixture

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"canopy/internal/domain"
	"canopy/internal/ports"
)

// Backend implements ports.DataBackend against in-memory fixture tables
type Backend struct {
	mu          sync.Mutex
	cultivars   []domain.Cultivar
	user        domain.User
	grows       []domain.Grow
	dashboard   []domain.PlantDashboardItem
	details     map[string]*domain.PlantDetail
	readDelay   time.Duration
	mutateDelay time.Duration
	lastPlantID int64
}

var _ ports.DataBackend = (*Backend)(nil)

// Option configures a Backend
type Option func(*Backend)

// WithLatency sets the artificial read and mutation delays. Zero disables
// the delay (used by tests and headless commands).
func WithLatency(read, mutate time.Duration) Option {
	return func(b *Backend) {
		b.readDelay = read
		b.mutateDelay = mutate
	}
}

// NewBackend creates a fixture backend with the default data set
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		cultivars:   defaultCultivars(),
		user:        defaultUser(),
		grows:       defaultGrows(),
		dashboard:   defaultDashboard(),
		details:     defaultPlantDetails(),
		readDelay:   300 * time.Millisecond,
		mutateDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// delay simulates network latency, honoring context cancellation
func (b *Backend) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextPlantID derives a unique plant id from the current time. Two calls in
// the same millisecond bump past the last issued id. Callers must hold b.mu.
func (b *Backend) nextPlantID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= b.lastPlantID {
		ms = b.lastPlantID + 1
	}
	b.lastPlantID = ms
	return fmt.Sprintf("plant-%d", ms)
}

// Login returns the fixture user after a simulated round trip
func (b *Backend) Login(ctx context.Context, _ domain.LoginPayload) (*domain.User, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}
	user := b.user
	return &user, nil
}

// Register behaves like Login in the fixture world
func (b *Backend) Register(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	if err := b.delay(ctx, b.mutateDelay); err != nil {
		return nil, err
	}
	user := b.user
	user.Email = payload.Email
	return &user, nil
}

// Me returns the fixture user
func (b *Backend) Me(ctx context.Context) (*domain.User, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}
	user := b.user
	return &user, nil
}

// ListGrows returns the grow table. Grows created in this session are not
// included; see the package comment.
func (b *Backend) ListGrows(ctx context.Context) ([]domain.Grow, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Grow(nil), b.grows...), nil
}

// CreateGrow synthesizes a new ACTIVE grow with a generated id
func (b *Backend) CreateGrow(ctx context.Context, payload domain.CreateGrowPayload) (*domain.Grow, error) {
	if err := b.delay(ctx, b.mutateDelay); err != nil {
		return nil, err
	}
	grow := domain.Grow{
		ID:          fmt.Sprintf("grow-%s", uuid.NewString()),
		Name:        payload.Name,
		Environment: payload.Environment,
		Status:      domain.GrowActive,
		PlantCount:  0,
		CreatedAt:   time.Now().UTC(),
	}
	return &grow, nil
}

// CreatePlant synthesizes a SEEDLING plant. The cultivar snapshot is looked
// up by id, falling back to the first fixture cultivar for unknown ids. The
// new plant is inserted into the shared detail table.
func (b *Backend) CreatePlant(ctx context.Context, payload domain.CreatePlantPayload) (*domain.Plant, error) {
	if err := b.delay(ctx, b.mutateDelay); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cultivar := b.cultivars[0]
	for _, c := range b.cultivars {
		if c.ID == payload.CultivarID {
			cultivar = c
			break
		}
	}

	now := time.Now().UTC()
	startDate := payload.StartDate
	if startDate == "" {
		startDate = now.Format("2006-01-02")
	}

	plant := domain.Plant{
		ID:        b.nextPlantID(now),
		Cultivar:  cultivar,
		Stage:     domain.StageSeedling,
		Status:    domain.StatusActive,
		StartDate: startDate,
		AgeInDays: payload.AgeInDays,
	}
	if payload.Name != "" {
		plant.Name = &payload.Name
	}
	if payload.Notes != "" {
		plant.Notes = &payload.Notes
	}

	growID, growName := "grow-1", "Main Tent"
	if payload.GrowID != "" {
		for _, g := range b.grows {
			if g.ID == payload.GrowID {
				growID, growName = g.ID, g.Name
				break
			}
		}
	}

	b.details[plant.ID] = &domain.PlantDetail{
		Plant:     plant,
		GrowID:    growID,
		GrowName:  growName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := plant
	return &result, nil
}

// PlantsDashboard returns the dashboard table
func (b *Backend) PlantsDashboard(ctx context.Context) ([]domain.PlantDashboardItem, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.PlantDashboardItem(nil), b.dashboard...), nil
}

// PlantDetail looks up a plant; unknown ids are a not-found error, never
// silently empty data
func (b *Backend) PlantDetail(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	detail, ok := b.details[plantID]
	if !ok {
		return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
	}
	return copyDetail(detail), nil
}

// WaterPlant appends a WATER action to the plant's history
func (b *Backend) WaterPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	return b.recordAction(ctx, plantID, domain.ActionWater, payload)
}

// FeedPlant appends a FEED action to the plant's history
func (b *Backend) FeedPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	return b.recordAction(ctx, plantID, domain.ActionFeed, payload)
}

func (b *Backend) recordAction(ctx context.Context, plantID string, actionType domain.ActionType, payload domain.ActionPayload) (*domain.PlantAction, error) {
	if err := b.delay(ctx, b.mutateDelay); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	detail, ok := b.details[plantID]
	if !ok {
		return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
	}
	if detail.Status == domain.StatusCompleted {
		return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantCompleted)
	}

	now := time.Now().UTC()
	action := domain.PlantAction{
		ID:          fmt.Sprintf("act-%s", uuid.NewString()),
		Type:        actionType,
		PerformedAt: now,
	}
	if payload.Notes != "" {
		action.Notes = &payload.Notes
	}

	// Newest first
	detail.RecentActions = append([]domain.PlantAction{action}, detail.RecentActions...)
	detail.UpdatedAt = now

	result := action
	return &result, nil
}

// CompletePlant marks the plant COMPLETED and records the action. Completed
// plants accept no further mutations.
func (b *Backend) CompletePlant(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	if err := b.delay(ctx, b.mutateDelay); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	detail, ok := b.details[plantID]
	if !ok {
		return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
	}
	if detail.Status == domain.StatusCompleted {
		return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantCompleted)
	}

	now := time.Now().UTC()
	detail.Status = domain.StatusCompleted
	detail.UpdatedAt = now
	detail.RecentActions = append([]domain.PlantAction{{
		ID:          fmt.Sprintf("act-%s", uuid.NewString()),
		Type:        domain.ActionComplete,
		PerformedAt: now,
	}}, detail.RecentActions...)

	return copyDetail(detail), nil
}

// SearchCultivars filters the catalog by case-insensitive substring
func (b *Backend) SearchCultivars(ctx context.Context, query string, limit int) ([]domain.Cultivar, error) {
	if err := b.delay(ctx, b.readDelay); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []domain.Cultivar
	for _, c := range b.cultivars {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}

// copyDetail returns a deep enough copy for callers to hold without
// aliasing the fixture tables
func copyDetail(d *domain.PlantDetail) *domain.PlantDetail {
	c := *d
	c.Signals = append([]domain.PlantSignal(nil), d.Signals...)
	c.RecentActions = append([]domain.PlantAction(nil), d.RecentActions...)
	return &c
}
