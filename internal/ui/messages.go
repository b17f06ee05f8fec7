package ui

import (
	"canopy/internal/domain"
)

// sessionCheckedMsg reports the result of the startup session probe
type sessionCheckedMsg struct {
	User *domain.User
}

// authDoneMsg reports a completed login or registration
type authDoneMsg struct {
	User *domain.User
	Err  error
}

// remoteDataMsg carries the concurrently fetched dashboard and grow lists
type remoteDataMsg struct {
	Dashboard []domain.PlantDashboardItem
	Grows     []domain.Grow
	Err       error
}

// plantDetailMsg carries a freshly fetched plant detail view
type plantDetailMsg struct {
	Detail *domain.PlantDetail
	Err    error
}

// plantActionMsg reports a completed water or feed action
type plantActionMsg struct {
	PlantID string
	Action  *domain.PlantAction
	Err     error
}

// plantCompletedMsg reports a completed lifecycle-finish action
type plantCompletedMsg struct {
	Detail *domain.PlantDetail
	Err    error
}

// plantCreatedMsg reports a completed plant creation
type plantCreatedMsg struct {
	Plant *domain.Plant
	Err   error
}

// growCreatedMsg reports a completed grow creation
type growCreatedMsg struct {
	Grow *domain.Grow
	Err  error
}

// cultivarsMsg carries catalog search results for the add-plant form
type cultivarsMsg struct {
	Cultivars []domain.Cultivar
	Err       error
}
