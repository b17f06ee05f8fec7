package cmd

import (
	"context"

	"canopy/internal/adapters/fixture"
	"canopy/internal/adapters/rest"
	adapterstorage "canopy/internal/adapters/storage"
	"canopy/internal/config"
	"canopy/internal/debuglog"
	"canopy/internal/mode"
	"canopy/internal/ports"
	"canopy/internal/services"
	"canopy/internal/store"
)

// Container holds all dependencies for the application. The data backend is
// chosen once here; nothing above this layer branches on mock versus live.
type Container struct {
	API   *services.APIService
	App   config.App
	Auth  *services.AuthService
	Mode  *mode.Controller
	Ring  *debuglog.Ring
	Store *store.Store

	// Internal - for cleanup only
	storeRepo ports.StoreRepository
}

// NewContainer creates a Container with all dependencies wired
func NewContainer(app config.App) (*Container, error) {
	var backend ports.DataBackend
	if app.UseMockData {
		// Mutation delay keeps the default 300ms:500ms proportion to the
		// configured read delay, so mock_latency_ms=0 also zeroes mutations.
		mutateDelay := app.MockLatency * config.DefaultMockMutateDelay / config.DefaultMockReadDelay
		backend = fixture.NewBackend(
			fixture.WithLatency(app.MockLatency, mutateDelay),
		)
	} else {
		backend = rest.NewBackend(app.APIBaseURL)
	}

	ring := debuglog.NewRing(debuglog.DefaultCapacity)
	apiService := services.NewAPIService(backend, ring)
	authService := services.NewAuthService(apiService)

	storeRepo, err := adapterstorage.NewSQLiteRepository(app.DBPath)
	if err != nil {
		return nil, err
	}
	localStore := store.NewWithRepository(context.Background(), storeRepo)

	return &Container{
		API:       apiService,
		App:       app,
		Auth:      authService,
		Mode:      mode.NewController(app.UIMode),
		Ring:      ring,
		Store:     localStore,
		storeRepo: storeRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.storeRepo != nil {
		return c.storeRepo.Close()
	}
	return nil
}
