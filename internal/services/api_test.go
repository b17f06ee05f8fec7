package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/adapters/fixture"
	"canopy/internal/api"
	"canopy/internal/debuglog"
	"canopy/internal/domain"
)

// failingBackend returns the same error from every operation
type failingBackend struct {
	err error
}

func (b *failingBackend) Login(context.Context, domain.LoginPayload) (*domain.User, error) {
	return nil, b.err
}

func (b *failingBackend) Register(context.Context, domain.LoginPayload) (*domain.User, error) {
	return nil, b.err
}

func (b *failingBackend) Me(context.Context) (*domain.User, error) {
	return nil, b.err
}

func (b *failingBackend) ListGrows(context.Context) ([]domain.Grow, error) {
	return nil, b.err
}

func (b *failingBackend) CreateGrow(context.Context, domain.CreateGrowPayload) (*domain.Grow, error) {
	return nil, b.err
}

func (b *failingBackend) CreatePlant(context.Context, domain.CreatePlantPayload) (*domain.Plant, error) {
	return nil, b.err
}

func (b *failingBackend) PlantsDashboard(context.Context) ([]domain.PlantDashboardItem, error) {
	return nil, b.err
}

func (b *failingBackend) PlantDetail(context.Context, string) (*domain.PlantDetail, error) {
	return nil, b.err
}

func (b *failingBackend) WaterPlant(context.Context, string, domain.ActionPayload) (*domain.PlantAction, error) {
	return nil, b.err
}

func (b *failingBackend) FeedPlant(context.Context, string, domain.ActionPayload) (*domain.PlantAction, error) {
	return nil, b.err
}

func (b *failingBackend) CompletePlant(context.Context, string) (*domain.PlantDetail, error) {
	return nil, b.err
}

func (b *failingBackend) SearchCultivars(context.Context, string, int) ([]domain.Cultivar, error) {
	return nil, b.err
}

func newFixtureAPIService() *APIService {
	backend := fixture.NewBackend(fixture.WithLatency(0, 0))
	return NewAPIService(backend, debuglog.NewRing(debuglog.DefaultCapacity))
}

func TestEveryOperationRecordsOneCall(t *testing.T) {
	ctx := context.Background()
	svc := newFixtureAPIService()

	ops := []func() error{
		func() error {
			_, err := svc.Login(ctx, domain.LoginPayload{Email: "grower@example.com", Password: "secret"})
			return err
		},
		func() error { _, err := svc.Me(ctx); return err },
		func() error { _, err := svc.ListGrows(ctx); return err },
		func() error { _, err := svc.PlantsDashboard(ctx); return err },
		func() error { _, err := svc.PlantDetail(ctx, "plant-1"); return err },
		func() error { _, err := svc.WaterPlant(ctx, "plant-1", domain.ActionPayload{}); return err },
		func() error { _, err := svc.FeedPlant(ctx, "plant-1", domain.ActionPayload{}); return err },
		func() error { _, err := svc.SearchCultivars(ctx, "blue", 10); return err },
	}

	for i, op := range ops {
		require.NoError(t, op())
		assert.Len(t, svc.DebugLogs(), i+1)
	}
}

func TestFailedCallsAreStillRecorded(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("backend unavailable")
	svc := NewAPIService(&failingBackend{err: backendErr}, debuglog.NewRing(debuglog.DefaultCapacity))

	_, err := svc.PlantsDashboard(ctx)
	require.Error(t, err)
	_, err = svc.CreatePlant(ctx, domain.CreatePlantPayload{})
	require.Error(t, err)

	logs := svc.DebugLogs()
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, api.EndpointPlantsCreate, logs[0].Endpoint)
	assert.Equal(t, http.MethodPost, logs[0].Method)
	assert.Equal(t, backendErr.Error(), logs[0].Error)
	assert.Nil(t, logs[0].Response)
	assert.Equal(t, api.EndpointPlantsDashboard, logs[1].Endpoint)
	assert.Equal(t, http.MethodGet, logs[1].Method)
}

func TestRecordCarriesEndpointAndPayload(t *testing.T) {
	ctx := context.Background()
	svc := newFixtureAPIService()

	_, err := svc.WaterPlant(ctx, "plant-2", domain.ActionPayload{})
	require.NoError(t, err)

	logs := svc.DebugLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "/api/v2/plants/plant-2/actions/water", logs[0].Endpoint)
	assert.Equal(t, http.MethodPost, logs[0].Method)
	assert.Empty(t, logs[0].Error)
	assert.False(t, logs[0].Timestamp.IsZero())
}

func TestClearDebugLogs(t *testing.T) {
	ctx := context.Background()
	svc := newFixtureAPIService()

	_, err := svc.ListGrows(ctx)
	require.NoError(t, err)
	_, err = svc.Me(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, svc.DebugLogs())

	svc.ClearDebugLogs()
	assert.Empty(t, svc.DebugLogs())
}
