package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/config"
	"canopy/internal/domain"
)

func testApp(t *testing.T) config.App {
	t.Helper()
	return config.App{
		APIBaseURL:  config.DefaultAPIBaseURL,
		AuthMode:    config.AuthMock,
		DBPath:      filepath.Join(t.TempDir(), "state.db"),
		MockLatency: 0,
		UIMode:      config.ModeUser,
		UseMockData: true,
	}
}

func TestZeroMockLatencyZeroesMutations(t *testing.T) {
	container, err := NewContainer(testApp(t))
	require.NoError(t, err)
	defer container.Close()

	start := time.Now()
	_, err = container.API.CreateGrow(context.Background(), domain.CreateGrowPayload{
		Name:        "Tent A",
		Environment: domain.EnvironmentIndoor,
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 200*time.Millisecond,
		"mutation slept despite zero mock latency")
}

func TestContainerWiresSharedRing(t *testing.T) {
	container, err := NewContainer(testApp(t))
	require.NoError(t, err)
	defer container.Close()

	_, err = container.API.ListGrows(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, container.Ring.Len())
}
