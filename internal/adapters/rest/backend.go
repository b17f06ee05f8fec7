package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"canopy/internal/api"
	"canopy/internal/domain"
	"canopy/internal/logging"
	"canopy/internal/ports"
)

// Backend implements ports.DataBackend over HTTP
type Backend struct {
	client *Client
}

var _ ports.DataBackend = (*Backend)(nil)

// NewBackend creates a live backend for the given base URL
func NewBackend(baseURL string) *Backend {
	return &Backend{client: NewClient(baseURL)}
}

// NewBackendWithClient creates a backend over an existing client (tests)
func NewBackendWithClient(client *Client) *Backend {
	return &Backend{client: client}
}

// authResult is the shape of login/register success responses. The backend
// only acknowledges; identity requires a follow-up auth/me call.
type authResult struct {
	OK bool `json:"ok"`
}

// Login performs the two-step login protocol: the credentials POST returns
// `{ok:true}` and sets the session cookie, then the identity is fetched
// from auth/me so callers always see one normalized shape.
func (b *Backend) Login(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	var result authResult
	if err := b.client.do(ctx, http.MethodPost, api.EndpointAuthLogin, payload, &result); err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, &api.StatusError{StatusCode: http.StatusOK, Message: "login not acknowledged"}
	}
	logging.Logger.Debug("Login acknowledged, fetching identity")
	return b.Me(ctx)
}

// Register mirrors Login's two-step protocol
func (b *Backend) Register(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	var result authResult
	if err := b.client.do(ctx, http.MethodPost, api.EndpointAuthRegister, payload, &result); err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, &api.StatusError{StatusCode: http.StatusOK, Message: "registration not acknowledged"}
	}
	return b.Me(ctx)
}

// Me fetches the current user
func (b *Backend) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := b.client.doData(ctx, http.MethodGet, api.EndpointAuthMe, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListGrows lists all grows
func (b *Backend) ListGrows(ctx context.Context) ([]domain.Grow, error) {
	var grows []domain.Grow
	if err := b.client.doData(ctx, http.MethodGet, api.EndpointGrows, nil, &grows); err != nil {
		return nil, err
	}
	return grows, nil
}

// CreateGrow creates a grow
func (b *Backend) CreateGrow(ctx context.Context, payload domain.CreateGrowPayload) (*domain.Grow, error) {
	var grow domain.Grow
	if err := b.client.doData(ctx, http.MethodPost, api.EndpointGrows, payload, &grow); err != nil {
		return nil, err
	}
	return &grow, nil
}

// createPlantResult is the shape of the create-plant response: only the new
// id, requiring a follow-up detail fetch
type createPlantResult struct {
	PlantID string `json:"plantId"`
}

// CreatePlant performs the two-step create protocol: the POST returns only
// `{plantId}`, then the full plant is fetched from the detail endpoint.
func (b *Backend) CreatePlant(ctx context.Context, payload domain.CreatePlantPayload) (*domain.Plant, error) {
	var result createPlantResult
	if err := b.client.doData(ctx, http.MethodPost, api.EndpointPlantsCreate, payload, &result); err != nil {
		return nil, err
	}
	if result.PlantID == "" {
		return nil, &api.StatusError{StatusCode: http.StatusOK, Message: "plant creation returned no id"}
	}
	logging.Logger.Debug("Plant created, fetching detail", "plant_id", result.PlantID)

	detail, err := b.PlantDetail(ctx, result.PlantID)
	if err != nil {
		return nil, fmt.Errorf("plant %s created but detail fetch failed: %w", result.PlantID, err)
	}
	plant := detail.Plant
	return &plant, nil
}

// PlantsDashboard fetches the dashboard listing
func (b *Backend) PlantsDashboard(ctx context.Context) ([]domain.PlantDashboardItem, error) {
	var items []domain.PlantDashboardItem
	if err := b.client.doData(ctx, http.MethodGet, api.EndpointPlantsDashboard, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PlantDetail fetches the full plant view. A 404 is surfaced as the
// domain's not-found condition.
func (b *Backend) PlantDetail(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	var detail domain.PlantDetail
	if err := b.client.doData(ctx, http.MethodGet, api.EndpointPlantDetail(plantID), nil, &detail); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
		}
		return nil, err
	}
	return &detail, nil
}

// WaterPlant records a water action
func (b *Backend) WaterPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	return b.postAction(ctx, api.EndpointPlantWater(plantID), plantID, payload)
}

// FeedPlant records a feed action
func (b *Backend) FeedPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	return b.postAction(ctx, api.EndpointPlantFeed(plantID), plantID, payload)
}

func (b *Backend) postAction(ctx context.Context, path, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error) {
	var action domain.PlantAction
	if err := b.client.doData(ctx, http.MethodPost, path, payload, &action); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
		}
		return nil, err
	}
	return &action, nil
}

// CompletePlant marks the plant completed
func (b *Backend) CompletePlant(ctx context.Context, plantID string) (*domain.PlantDetail, error) {
	var detail domain.PlantDetail
	if err := b.client.doData(ctx, http.MethodPost, api.EndpointPlantComplete(plantID), nil, &detail); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("plant %q: %w", plantID, domain.ErrPlantNotFound)
		}
		return nil, err
	}
	return &detail, nil
}

// SearchCultivars queries the cultivar catalog
func (b *Backend) SearchCultivars(ctx context.Context, query string, limit int) ([]domain.Cultivar, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var cultivars []domain.Cultivar
	path := api.EndpointCatalogSearch + "?" + params.Encode()
	if err := b.client.doData(ctx, http.MethodGet, path, nil, &cultivars); err != nil {
		return nil, err
	}
	return cultivars, nil
}
