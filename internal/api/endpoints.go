package api

import "fmt"

// Endpoint paths shared by the live backend and the call log
const (
	EndpointAuthLogin       = "/api/v2/auth/login"
	EndpointAuthRegister    = "/api/v2/auth/register"
	EndpointAuthMe          = "/api/v2/auth/me"
	EndpointGrows           = "/api/v2/grows"
	EndpointPlantsCreate    = "/api/v1/plants"
	EndpointPlantsDashboard = "/api/v2/plants/dashboard"
	EndpointCatalogSearch   = "/api/v2/catalogs/cannabis-strains/search"
)

// EndpointPlantDetail returns the detail path for a plant
func EndpointPlantDetail(plantID string) string {
	return fmt.Sprintf("/api/v2/plants/%s/detail", plantID)
}

// EndpointPlantWater returns the water action path for a plant
func EndpointPlantWater(plantID string) string {
	return fmt.Sprintf("/api/v2/plants/%s/actions/water", plantID)
}

// EndpointPlantFeed returns the feed action path for a plant
func EndpointPlantFeed(plantID string) string {
	return fmt.Sprintf("/api/v2/plants/%s/actions/feed", plantID)
}

// EndpointPlantComplete returns the complete path for a plant
func EndpointPlantComplete(plantID string) string {
	return fmt.Sprintf("/api/v2/plants/%s/complete", plantID)
}
