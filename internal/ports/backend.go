package ports

import (
	"context"

	"canopy/internal/domain"
)

// AuthBackend performs authentication operations
type AuthBackend interface {
	Login(ctx context.Context, payload domain.LoginPayload) (*domain.User, error)
	Register(ctx context.Context, payload domain.LoginPayload) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
}

// GrowBackend reads and creates grows
type GrowBackend interface {
	ListGrows(ctx context.Context) ([]domain.Grow, error)
	CreateGrow(ctx context.Context, payload domain.CreateGrowPayload) (*domain.Grow, error)
}

// PlantBackend reads plants and performs plant operations
type PlantBackend interface {
	CreatePlant(ctx context.Context, payload domain.CreatePlantPayload) (*domain.Plant, error)
	PlantsDashboard(ctx context.Context) ([]domain.PlantDashboardItem, error)
	PlantDetail(ctx context.Context, plantID string) (*domain.PlantDetail, error)
	WaterPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error)
	FeedPlant(ctx context.Context, plantID string, payload domain.ActionPayload) (*domain.PlantAction, error)
	CompletePlant(ctx context.Context, plantID string) (*domain.PlantDetail, error)
}

// CatalogBackend searches the cultivar catalog
type CatalogBackend interface {
	SearchCultivars(ctx context.Context, query string, limit int) ([]domain.Cultivar, error)
}

// DataBackend is the composite capability interface every backend
// implements. It is selected once at composition time; operation logic above
// it is backend-agnostic.
type DataBackend interface {
	AuthBackend
	GrowBackend
	PlantBackend
	CatalogBackend
}
