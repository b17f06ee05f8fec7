package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/domain"
)

func testBackend() *Backend {
	return NewBackend(WithLatency(0, 0))
}

func TestCreatePlantSnapshotsCultivar(t *testing.T) {
	b := testBackend()

	plant, err := b.CreatePlant(context.Background(), domain.CreatePlantPayload{CultivarID: "cult-2"})

	require.NoError(t, err)
	assert.Equal(t, "Blue Dream", plant.Cultivar.Name)
	assert.Equal(t, domain.StageSeedling, plant.Stage)
	assert.Equal(t, domain.StatusActive, plant.Status)
}

func TestCreatePlantUnknownCultivarFallsBack(t *testing.T) {
	b := testBackend()

	plant, err := b.CreatePlant(context.Background(), domain.CreatePlantPayload{CultivarID: "cult-999"})

	require.NoError(t, err)
	assert.Equal(t, "Northern Lights", plant.Cultivar.Name, "unknown cultivar id falls back to the first fixture cultivar")
}

func TestCreatePlantIDsAreUnique(t *testing.T) {
	b := testBackend()

	// Back-to-back creations land in the same millisecond with zero latency
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		plant, err := b.CreatePlant(context.Background(), domain.CreatePlantPayload{CultivarID: "cult-1"})
		require.NoError(t, err)
		assert.False(t, seen[plant.ID], "duplicate plant id %s", plant.ID)
		seen[plant.ID] = true
	}
}

func TestCreatePlantVisibleInDetailFetch(t *testing.T) {
	b := testBackend()

	plant, err := b.CreatePlant(context.Background(), domain.CreatePlantPayload{CultivarID: "cult-3", Name: "Kush"})
	require.NoError(t, err)

	detail, err := b.PlantDetail(context.Background(), plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kush", *detail.Name)
	assert.Equal(t, "OG Kush", detail.Cultivar.Name)
}

func TestPlantDetailNotFound(t *testing.T) {
	b := testBackend()

	_, err := b.PlantDetail(context.Background(), "does-not-exist")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestCreateGrowSynthesizesActiveGrow(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	before, err := b.ListGrows(ctx)
	require.NoError(t, err)

	grow, err := b.CreateGrow(ctx, domain.CreateGrowPayload{Name: "Tent A", Environment: domain.EnvironmentIndoor})
	require.NoError(t, err)

	assert.Equal(t, domain.GrowActive, grow.Status)
	assert.Zero(t, grow.PlantCount)
	for _, g := range before {
		assert.NotEqual(t, g.ID, grow.ID)
	}

	// The grow table is stateless: the created grow does not appear in a
	// subsequent listing
	after, err := b.ListGrows(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestActionsRejectedOnCompletedPlant(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	// plant-3 (Frosty) is COMPLETED in the fixture set
	_, err := b.WaterPlant(ctx, "plant-3", domain.ActionPayload{})
	assert.ErrorIs(t, err, domain.ErrPlantCompleted)

	_, err = b.FeedPlant(ctx, "plant-3", domain.ActionPayload{})
	assert.ErrorIs(t, err, domain.ErrPlantCompleted)

	_, err = b.CompletePlant(ctx, "plant-3")
	assert.ErrorIs(t, err, domain.ErrPlantCompleted)
}

func TestWaterPlantPrependsAction(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	action, err := b.WaterPlant(ctx, "plant-1", domain.ActionPayload{Notes: "1L"})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionWater, action.Type)
	require.NotNil(t, action.Notes)
	assert.Equal(t, "1L", *action.Notes)

	detail, err := b.PlantDetail(ctx, "plant-1")
	require.NoError(t, err)
	require.NotEmpty(t, detail.RecentActions)
	assert.Equal(t, action.ID, detail.RecentActions[0].ID, "newest action first")
}

func TestCompletePlantIsTerminal(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	detail, err := b.CompletePlant(ctx, "plant-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, detail.Status)
	assert.Equal(t, domain.ActionComplete, detail.RecentActions[0].Type)

	_, err = b.WaterPlant(ctx, "plant-1", domain.ActionPayload{})
	assert.ErrorIs(t, err, domain.ErrPlantCompleted)
}

func TestSearchCultivars(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"substring match", "dream", 0, []string{"Blue Dream"}},
		{"case insensitive", "KUSH", 0, []string{"OG Kush"}},
		{"empty query returns all", "", 0, []string{"Northern Lights", "Blue Dream", "OG Kush", "White Widow", "Sour Diesel", "Girl Scout Cookies", "AK-47"}},
		{"limit applies", "", 2, []string{"Northern Lights", "Blue Dream"}},
		{"no match", "tomato", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.SearchCultivars(ctx, tt.query, tt.limit)
			require.NoError(t, err)

			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDelayHonorsContextCancellation(t *testing.T) {
	b := NewBackend() // default latency

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.PlantsDashboard(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDetailCopiesDoNotAliasFixtures(t *testing.T) {
	b := testBackend()
	ctx := context.Background()

	detail, err := b.PlantDetail(ctx, "plant-1")
	require.NoError(t, err)
	detail.Signals[0].Message = "mutated"

	fresh, err := b.PlantDetail(ctx, "plant-1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Signals[0].Message)
}
