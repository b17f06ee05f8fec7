package services

import (
	"context"
	"net/http"
	"time"

	"canopy/internal/api"
	"canopy/internal/debuglog"
	"canopy/internal/domain"
	"canopy/internal/logging"
	"canopy/internal/ports"
)

// APIService is the single entry point for all remote data access. It
// delegates to the configured backend and records one call-log entry per
// operation, whether the call succeeds or fails.
type APIService struct {
	backend ports.DataBackend
	ring    *debuglog.Ring
}

// NewAPIService creates a new APIService
func NewAPIService(backend ports.DataBackend, ring *debuglog.Ring) *APIService {
	return &APIService{
		backend: backend,
		ring:    ring,
	}
}

// record appends a call-log entry for a completed backend operation
func (s *APIService) record(endpoint, method string, request, response any, err error) {
	rec := domain.APICallRecord{
		Endpoint:  endpoint,
		Method:    method,
		Request:   request,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	s.ring.Record(rec)
}

// Login authenticates with the backend and returns the signed-in user
func (s *APIService) Login(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	user, err := s.backend.Login(ctx, payload)
	s.record(api.EndpointAuthLogin, http.MethodPost, payload, user, err)
	if err != nil {
		logging.Logger.Warn("Login failed", "email", payload.Email, "error", err)
		return nil, err
	}
	logging.Logger.Info("Login succeeded", "user", user.ID)
	return user, nil
}

// Register creates an account and returns the signed-in user
func (s *APIService) Register(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	user, err := s.backend.Register(ctx, payload)
	s.record(api.EndpointAuthRegister, http.MethodPost, payload, user, err)
	if err != nil {
		logging.Logger.Warn("Registration failed", "email", payload.Email, "error", err)
		return nil, err
	}
	logging.Logger.Info("Registration succeeded", "user", user.ID)
	return user, nil
}

// Me returns the current session's user
func (s *APIService) Me(ctx context.Context) (*domain.User, error) {
	user, err := s.backend.Me(ctx)
	s.record(api.EndpointAuthMe, http.MethodGet, nil, user, err)
	return user, err
}

// ListGrows returns the user's grows
func (s *APIService) ListGrows(ctx context.Context) ([]domain.Grow, error) {
	grows, err := s.backend.ListGrows(ctx)
	s.record(api.EndpointGrows, http.MethodGet, nil, grows, err)
	return grows, err
}

// CreateGrow creates a new grow
func (s *APIService) CreateGrow(ctx context.Context, payload domain.CreateGrowPayload) (*domain.Grow, error) {
	grow, err := s.backend.CreateGrow(ctx, payload)
	s.record(api.EndpointGrows, http.MethodPost, payload, grow, err)
	return grow, err
}

// PlantsDashboard returns the plant dashboard
func (s *APIService) PlantsDashboard(ctx context.Context) ([]domain.PlantDashboardItem, error) {
	items, err := s.backend.PlantsDashboard(ctx)
	s.record(api.EndpointPlantsDashboard, http.MethodGet, nil, items, err)
	return items, err
}

// CreatePlant creates a new plant and returns its full record
func (s *APIService) CreatePlant(ctx context.Context, payload domain.CreatePlantPayload) (*domain.Plant, error) {
	plant, err := s.backend.CreatePlant(ctx, payload)
	s.record(api.EndpointPlantsCreate, http.MethodPost, payload, plant, err)
	return plant, err
}

// PlantDetail returns the full detail view for a plant
func (s *APIService) PlantDetail(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	detail, err := s.backend.PlantDetail(ctx, plantID)
	s.record(api.EndpointPlantDetail(plantID), http.MethodGet, nil, detail, err)
	return detail, err
}

// WaterPlant records a watering action on a plant
func (s *APIService) WaterPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	action, err := s.backend.WaterPlant(ctx, plantID, payload)
	s.record(api.EndpointPlantWater(plantID), http.MethodPost, payload, action, err)
	return action, err
}

// FeedPlant records a feeding action on a plant
func (s *APIService) FeedPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	action, err := s.backend.FeedPlant(ctx, plantID, payload)
	s.record(api.EndpointPlantFeed(plantID), http.MethodPost, payload, action, err)
	return action, err
}

// CompletePlant marks a plant's lifecycle as finished
func (s *APIService) CompletePlant(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	detail, err := s.backend.CompletePlant(ctx, plantID)
	s.record(api.EndpointPlantComplete(plantID), http.MethodPost, nil, detail, err)
	return detail, err
}

// SearchCultivars searches the cultivar catalog
func (s *APIService) SearchCultivars(ctx context.Context, query string, limit int) ([]domain.Cultivar, error) {
	cultivars, err := s.backend.SearchCultivars(ctx, query, limit)
	s.record(api.EndpointCatalogSearch, http.MethodGet, query, cultivars, err)
	return cultivars, err
}

// DebugLogs returns the recorded call log, newest first
func (s *APIService) DebugLogs() []domain.APICallRecord {
	return s.ring.Entries()
}

// ClearDebugLogs empties the call log
func (s *APIService) ClearDebugLogs() {
	s.ring.Clear()
}
