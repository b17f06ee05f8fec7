package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"canopy/internal/domain"
	"canopy/internal/services"
)

// requestTimeout bounds every backend call issued from the UI
const requestTimeout = 30 * time.Second

func checkSession(auth *services.AuthService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		auth.CheckSession(ctx)
		return sessionCheckedMsg{User: auth.User()}
	}
}

func login(auth *services.AuthService, payload domain.LoginPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := auth.Login(ctx, payload)
		return authDoneMsg{User: user, Err: err}
	}
}

func register(auth *services.AuthService, payload domain.LoginPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := auth.Register(ctx, payload)
		return authDoneMsg{User: user, Err: err}
	}
}

// loadRemoteData fetches the dashboard and the grow list concurrently. Both
// must succeed; a single failure fails the whole refresh.
func loadRemoteData(api *services.APIService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			dashboard []domain.PlantDashboardItem
			grows     []domain.Grow
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			dashboard, err = api.PlantsDashboard(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			grows, err = api.ListGrows(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return remoteDataMsg{Err: err}
		}
		return remoteDataMsg{Dashboard: dashboard, Grows: grows}
	}
}

func loadPlantDetail(api *services.APIService, plantID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := api.PlantDetail(ctx, plantID)
		return plantDetailMsg{Detail: detail, Err: err}
	}
}

func waterPlant(api *services.APIService, plantID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		action, err := api.WaterPlant(ctx, plantID, domain.ActionPayload{})
		return plantActionMsg{PlantID: plantID, Action: action, Err: err}
	}
}

func feedPlant(api *services.APIService, plantID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		action, err := api.FeedPlant(ctx, plantID, domain.ActionPayload{})
		return plantActionMsg{PlantID: plantID, Action: action, Err: err}
	}
}

func completePlant(api *services.APIService, plantID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := api.CompletePlant(ctx, plantID)
		return plantCompletedMsg{Detail: detail, Err: err}
	}
}

func createPlant(api *services.APIService, payload domain.CreatePlantPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		plant, err := api.CreatePlant(ctx, payload)
		return plantCreatedMsg{Plant: plant, Err: err}
	}
}

func createGrow(api *services.APIService, payload domain.CreateGrowPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		grow, err := api.CreateGrow(ctx, payload)
		return growCreatedMsg{Grow: grow, Err: err}
	}
}

func searchCultivars(api *services.APIService, query string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		cultivars, err := api.SearchCultivars(ctx, query, limit)
		return cultivarsMsg{Cultivars: cultivars, Err: err}
	}
}
