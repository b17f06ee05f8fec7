package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/api"
	"canopy/internal/domain"
)

func newTestBackend(t *testing.T, handler http.Handler) *Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackend(srv.URL)
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": data, "success": true})
}

func TestLoginTwoStepChoreography(t *testing.T) {
	var sawLogin, sawMe bool

	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointAuthLogin, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload domain.LoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "grower@example.com", payload.Email)

		sawLogin = true
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})
	mux.HandleFunc(api.EndpointAuthMe, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		require.NoError(t, err, "follow-up identity fetch must carry the session cookie")
		assert.Equal(t, "abc", cookie.Value)

		sawMe = true
		writeData(w, domain.User{ID: "user-1", Email: "grower@example.com", Name: "Home Grower"})
	})

	b := newTestBackend(t, mux)

	user, err := b.Login(context.Background(), domain.LoginPayload{Email: "grower@example.com", Password: "hunter2hunter2"})

	require.NoError(t, err)
	assert.True(t, sawLogin)
	assert.True(t, sawMe)
	assert.Equal(t, "user-1", user.ID)
}

func TestLoginNotAcknowledged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointAuthLogin, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false})
	})

	b := newTestBackend(t, mux)

	_, err := b.Login(context.Background(), domain.LoginPayload{Email: "a@b.com", Password: "password1"})

	require.Error(t, err)
	assert.False(t, api.IsAuthError(err))
}

func TestMeUnauthorizedIsAuthError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointAuthMe, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "session expired"})
	})

	b := newTestBackend(t, mux)

	_, err := b.Me(context.Background())

	require.Error(t, err)
	assert.True(t, api.IsAuthError(err))
	assert.Contains(t, err.Error(), "session expired")
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointGrows, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "name is required"})
	})

	b := newTestBackend(t, mux)

	_, err := b.CreateGrow(context.Background(), domain.CreateGrowPayload{})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "name is required", statusErr.Message)
}

func TestNetworkErrorClassification(t *testing.T) {
	b := NewBackend("http://127.0.0.1:1") // nothing listens here

	_, err := b.PlantsDashboard(context.Background())

	assert.True(t, api.IsNetworkError(err))
}

func TestCreatePlantTwoStepChoreography(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointPlantsCreate, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeData(w, map[string]string{"plantId": "plant-77"})
	})
	mux.HandleFunc("/api/v2/plants/plant-77/detail", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, domain.PlantDetail{
			Plant: domain.Plant{
				ID:       "plant-77",
				Cultivar: domain.Cultivar{ID: "cult-2", Name: "Blue Dream"},
				Stage:    domain.StageSeedling,
				Status:   domain.StatusActive,
			},
		})
	})

	b := newTestBackend(t, mux)

	plant, err := b.CreatePlant(context.Background(), domain.CreatePlantPayload{CultivarID: "cult-2"})

	require.NoError(t, err)
	assert.Equal(t, "plant-77", plant.ID)
	assert.Equal(t, "Blue Dream", plant.Cultivar.Name)
}

func TestPlantDetailNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/plants/does-not-exist/detail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "plant not found"})
	})

	b := newTestBackend(t, mux)

	_, err := b.PlantDetail(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestWaterPlantPostsToActionEndpoint(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeData(w, domain.PlantAction{ID: "act-1", Type: domain.ActionWater})
	})

	b := newTestBackend(t, mux)

	action, err := b.WaterPlant(context.Background(), "plant-1", domain.ActionPayload{Notes: "2L"})

	require.NoError(t, err)
	assert.Equal(t, "/api/v2/plants/plant-1/actions/water", gotPath)
	assert.Equal(t, domain.ActionWater, action.Type)
}

func TestSearchCultivarsQueryParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(api.EndpointCatalogSearch, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dream", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeData(w, []domain.Cultivar{{ID: "cult-2", Name: "Blue Dream"}})
	})

	b := newTestBackend(t, mux)

	cultivars, err := b.SearchCultivars(context.Background(), "dream", 5)

	require.NoError(t, err)
	require.Len(t, cultivars, 1)
	assert.Equal(t, "Blue Dream", cultivars[0].Name)
}
