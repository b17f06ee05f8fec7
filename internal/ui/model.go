package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"canopy/internal/config"
	"canopy/internal/domain"
	"canopy/internal/logging"
	"canopy/internal/mode"
	"canopy/internal/services"
	"canopy/internal/store"
	"canopy/internal/theme"
)

type uiState int

const (
	stateLoading uiState = iota
	stateLogin
	stateDashboard
	statePlantDetail
	stateToday
	stateGrows
	stateCreatingPlant
	stateCreatingGrow
	stateModeSelect
	stateDebug
	stateHelp
)

// catalogSearchLimit is the page size requested when opening the add-plant form
const catalogSearchLimit = 50

type Model struct {
	api          *services.APIService
	appCfg       config.App
	auth         *services.AuthService
	detail       *domain.PlantDetail
	errorManager *ErrorManager
	growForm     *GrowForm
	grows        []domain.Grow
	height       int
	keys         KeyMap
	listReady    bool
	loginForm    *LoginForm
	modeCtrl     *mode.Controller
	modeForm     *ModeForm
	plantForm    *PlantForm
	plantList    list.Model
	prevState    uiState // where esc returns to from help/debug
	spinner      spinner.Model
	state        uiState
	store        *store.Store
	taskScreen   *TaskScreen
	width        int
}

// NewModel wires the root TUI model from the composed services
func NewModel(
	appCfg config.App,
	errorManager *ErrorManager,
	apiService *services.APIService,
	authService *services.AuthService,
	localStore *store.Store,
	modeCtrl *mode.Controller,
) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	return &Model{
		api:          apiService,
		appCfg:       appCfg,
		auth:         authService,
		errorManager: errorManager,
		keys:         NewKeyMap(),
		modeCtrl:     modeCtrl,
		spinner:      sp,
		state:        stateLoading,
		store:        localStore,
		taskScreen:   NewTaskScreen(localStore),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, checkSession(m.auth))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window size and error clearing apply to every state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.plantList.SetSize(msg.Width, m.listHeight())
		}
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateLoading:
		return m.updateLoading(msg)
	case stateLogin:
		return m.updateLogin(msg)
	case stateDashboard:
		return m.updateDashboard(msg)
	case statePlantDetail:
		return m.updatePlantDetail(msg)
	case stateToday:
		return m.updateToday(msg)
	case stateGrows:
		return m.updateGrows(msg)
	case stateCreatingPlant:
		return m.updateCreatingPlant(msg)
	case stateCreatingGrow:
		return m.updateCreatingGrow(msg)
	case stateModeSelect:
		return m.updateModeSelect(msg)
	case stateDebug:
		return m.updateDebug(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m *Model) listHeight() int {
	h := m.height - 4 // room for the footer and error line
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.Quit) {
			return m, tea.Quit
		}

	case sessionCheckedMsg:
		if msg.User == nil && m.appCfg.AuthMode == config.AuthCookies {
			m.loginForm = NewLoginForm()
			m.state = stateLogin
			return m, m.loginForm.Init()
		}
		return m, loadRemoteData(m.api)

	case authDoneMsg:
		if msg.Err != nil {
			m.errorManager.SetError(msg.Err)
			m.loginForm = NewLoginForm()
			m.state = stateLogin
			return m, tea.Batch(m.loginForm.Init(), m.errorManager.ClearAfterDelay())
		}
		return m, loadRemoteData(m.api)

	case remoteDataMsg:
		if msg.Err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to load data: %w", msg.Err))
			logging.Logger.Warn("Initial data load failed", "error", msg.Err)
		} else {
			m.grows = msg.Grows
			m.plantList = NewPlantList(msg.Dashboard, m.width, m.listHeight())
			m.listReady = true
		}
		m.state = stateDashboard
		return m, m.errorManager.ClearAfterDelay()

	case plantCreatedMsg:
		if msg.Err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to create plant: %w", msg.Err))
			m.state = stateDashboard
			return m, m.errorManager.ClearAfterDelay()
		}
		logging.Logger.Info("Plant created", "plant_id", msg.Plant.ID)
		return m, loadRemoteData(m.api)

	case plantDetailMsg:
		return m.handlePlantDetail(msg)
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.loginForm.Update(msg)
	m.loginForm = updated.(*LoginForm)

	if m.loginForm.Completed {
		result := m.loginForm.Result()
		m.loginForm = nil

		if result.Cancelled {
			return m, tea.Quit
		}

		m.state = stateLoading
		if result.Register {
			return m, register(m.auth, result.Payload)
		}
		return m, login(m.auth, result.Payload)
	}

	return m, cmd
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the list filter is active, keys belong to the filter input
		if m.listReady && m.plantList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Application.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Application.Help):
			m.prevState = stateDashboard
			m.state = stateHelp
			return m, nil

		case key.Matches(msg, m.keys.Application.Debug):
			if m.modeCtrl.IsDev() {
				m.prevState = stateDashboard
				m.state = stateDebug
			}
			return m, nil

		case key.Matches(msg, m.keys.Application.Mode):
			m.modeForm = NewModeForm(m.modeCtrl.Current())
			m.state = stateModeSelect
			return m, m.modeForm.Init()

		case key.Matches(msg, m.keys.Application.Refresh):
			m.state = stateLoading
			return m, loadRemoteData(m.api)

		case key.Matches(msg, m.keys.Application.Logout):
			m.auth.Logout()
			m.loginForm = NewLoginForm()
			m.state = stateLogin
			return m, m.loginForm.Init()

		case key.Matches(msg, m.keys.Navigation.Today):
			m.state = stateToday
			return m, nil

		case key.Matches(msg, m.keys.Navigation.Grows):
			m.state = stateGrows
			return m, nil

		case key.Matches(msg, m.keys.Plant.New):
			if !m.modeCtrl.CanAct() {
				return m, nil
			}
			m.state = stateLoading
			return m, searchCultivars(m.api, "", catalogSearchLimit)

		case key.Matches(msg, m.keys.Navigation.Select):
			if item, ok := m.selectedPlant(); ok {
				m.state = stateLoading
				return m, loadPlantDetail(m.api, item.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Plant.Water):
			if item, ok := m.selectedPlant(); ok && m.modeCtrl.CanAct() {
				return m, waterPlant(m.api, item.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Plant.Feed):
			if item, ok := m.selectedPlant(); ok && m.modeCtrl.CanAct() {
				return m, feedPlant(m.api, item.ID)
			}
			return m, nil
		}

	case cultivarsMsg:
		return m.handleCultivars(msg)

	case plantActionMsg:
		return m.handlePlantAction(msg)

	case remoteDataMsg:
		if msg.Err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to refresh: %w", msg.Err))
			return m, m.errorManager.ClearAfterDelay()
		}
		m.grows = msg.Grows
		m.plantList = NewPlantList(msg.Dashboard, m.width, m.listHeight())
		m.listReady = true
		return m, nil
	}

	if m.listReady {
		var cmd tea.Cmd
		m.plantList, cmd = m.plantList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectedPlant returns the dashboard item under the cursor
func (m *Model) selectedPlant() (domain.PlantDashboardItem, bool) {
	if !m.listReady {
		return domain.PlantDashboardItem{}, false
	}
	item, ok := m.plantList.SelectedItem().(PlantItem)
	if !ok {
		return domain.PlantDashboardItem{}, false
	}
	return item.Plant, true
}

func (m *Model) handlePlantDetail(msg plantDetailMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorManager.SetError(fmt.Errorf("failed to load plant: %w", msg.Err))
		m.state = stateDashboard
		return m, m.errorManager.ClearAfterDelay()
	}
	m.detail = msg.Detail
	m.state = statePlantDetail
	return m, nil
}

func (m *Model) handlePlantAction(msg plantActionMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorManager.SetError(fmt.Errorf("action failed: %w", msg.Err))
		return m, m.errorManager.ClearAfterDelay()
	}
	// Refresh the detail view when it is the active screen
	if m.state == statePlantDetail && m.detail != nil && m.detail.ID == msg.PlantID {
		return m, loadPlantDetail(m.api, msg.PlantID)
	}
	return m, nil
}

func (m *Model) handleCultivars(msg cultivarsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorManager.SetError(fmt.Errorf("failed to load catalog: %w", msg.Err))
		m.state = stateDashboard
		return m, m.errorManager.ClearAfterDelay()
	}
	m.plantForm = NewPlantForm(msg.Cultivars, m.grows)
	m.state = stateCreatingPlant
	return m, m.plantForm.Init()
}

func (m *Model) updatePlantDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		canAct := m.modeCtrl.CanAct() && m.detail != nil && m.detail.Status != domain.StatusCompleted
		switch {
		case key.Matches(msg, m.keys.Navigation.Back):
			m.detail = nil
			m.state = stateLoading
			return m, loadRemoteData(m.api)

		case key.Matches(msg, m.keys.Application.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Plant.Water):
			if canAct {
				return m, waterPlant(m.api, m.detail.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Plant.Feed):
			if canAct {
				return m, feedPlant(m.api, m.detail.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Plant.Complete):
			if canAct {
				return m, completePlant(m.api, m.detail.ID)
			}
			return m, nil
		}

	case plantActionMsg:
		return m.handlePlantAction(msg)

	case plantCompletedMsg:
		if msg.Err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to complete plant: %w", msg.Err))
			return m, m.errorManager.ClearAfterDelay()
		}
		m.detail = msg.Detail
		return m, nil

	case plantDetailMsg:
		return m.handlePlantDetail(msg)
	}
	return m, nil
}

func (m *Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Navigation.Back), key.Matches(msg, m.keys.Navigation.Dashboard):
			m.state = stateDashboard
			return m, nil

		case key.Matches(msg, m.keys.Navigation.Grows):
			m.state = stateGrows
			return m, nil

		case key.Matches(msg, m.keys.Application.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Application.Help):
			m.prevState = stateToday
			m.state = stateHelp
			return m, nil

		case key.Matches(msg, m.keys.Navigation.Up):
			m.taskScreen.MoveUp()
			return m, nil

		case key.Matches(msg, m.keys.Navigation.Down):
			m.taskScreen.MoveDown()
			return m, nil

		case key.Matches(msg, m.keys.Task.Done):
			if task := m.taskScreen.Selected(); task != nil && m.modeCtrl.CanAct() {
				m.store.CompleteTask(task.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateGrows(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Navigation.Back), key.Matches(msg, m.keys.Navigation.Dashboard):
			m.state = stateDashboard
			return m, nil

		case key.Matches(msg, m.keys.Navigation.Today):
			m.state = stateToday
			return m, nil

		case key.Matches(msg, m.keys.Application.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Application.Help):
			m.prevState = stateGrows
			m.state = stateHelp
			return m, nil

		case key.Matches(msg, m.keys.Grow.New):
			if !m.modeCtrl.CanAct() {
				return m, nil
			}
			m.growForm = NewGrowForm()
			m.state = stateCreatingGrow
			return m, m.growForm.Init()
		}

	case growCreatedMsg:
		if msg.Err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to create grow: %w", msg.Err))
			return m, m.errorManager.ClearAfterDelay()
		}
		// The created grow is appended locally; the next full refresh is
		// authoritative.
		m.grows = append(m.grows, *msg.Grow)
		return m, nil
	}
	return m, nil
}

func (m *Model) updateCreatingPlant(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.plantForm.Update(msg)
	m.plantForm = updated.(*PlantForm)

	if m.plantForm.Completed {
		result := m.plantForm.Result()
		m.plantForm = nil

		if result.Cancelled {
			m.state = stateDashboard
			return m, nil
		}
		m.state = stateLoading
		return m, createPlant(m.api, result.Payload)
	}

	return m, cmd
}

func (m *Model) updateCreatingGrow(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.growForm.Update(msg)
	m.growForm = updated.(*GrowForm)

	if m.growForm.Completed {
		result := m.growForm.Result()
		m.growForm = nil
		m.state = stateGrows

		if result.Cancelled {
			return m, nil
		}
		return m, createGrow(m.api, result.Payload)
	}

	return m, cmd
}

func (m *Model) updateModeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.modeForm.Update(msg)
	m.modeForm = updated.(*ModeForm)

	if m.modeForm.Completed {
		result := m.modeForm.Result()
		m.modeForm = nil
		m.state = stateDashboard

		if !result.Cancelled {
			m.modeCtrl.Set(result.Mode)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateDebug(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.state = m.prevState
			return m, nil
		case "c":
			m.api.ClearDebugLogs()
			return m, nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?":
			m.state = m.prevState
			return m, nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var body string

	switch m.state {
	case stateLoading:
		body = fmt.Sprintf("\n  %s Loading...\n", m.spinner.View())
	case stateLogin:
		if m.loginForm != nil {
			body = m.loginForm.View()
		}
	case stateDashboard:
		body = m.dashboardView()
	case statePlantDetail:
		if m.detail != nil {
			canAct := m.modeCtrl.CanAct()
			body = renderPlantDetail(m.detail, canAct)
		}
	case stateToday:
		body = m.taskScreen.View()
	case stateGrows:
		body = renderGrows(m.grows)
	case stateCreatingPlant:
		if m.plantForm != nil {
			body = m.plantForm.View()
		}
	case stateCreatingGrow:
		if m.growForm != nil {
			body = m.growForm.View()
		}
	case stateModeSelect:
		if m.modeForm != nil {
			body = m.modeForm.View()
		}
	case stateDebug:
		body = renderDebugPanel(m.appCfg, m.modeCtrl.Current(), m.api.DebugLogs())
	case stateHelp:
		body = renderHelpScreen(m.keys)
	}

	if m.errorManager.HasError() {
		width := m.width
		if width == 0 {
			width = 80
		}
		body += "\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), width))
	}

	return body
}

func (m *Model) dashboardView() string {
	if !m.listReady {
		return fmt.Sprintf("\n  %s Loading...\n", m.spinner.View())
	}

	body := m.plantList.View()
	footer := m.footerView()
	return body + "\n" + footer
}

func (m *Model) footerView() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts,
			theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	footer := parts[0]
	for _, p := range parts[1:] {
		footer += theme.MutedStyle.Render(" · ") + p
	}
	if m.modeCtrl.IsObserver() {
		footer += theme.MutedStyle.Render(" · ") + theme.HintLabelStyle.Render("observer")
	}
	return theme.HelpStyle.Render(footer)
}
