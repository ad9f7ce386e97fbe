// Package tui implements the interactive terminal client.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-crm/leadline/internal/api"
	"github.com/leadline-crm/leadline/internal/cache"
	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/components"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// Screen identifies one of the top-level screens.
type Screen int

// Top-level screens.
const (
	ScreenDashboard Screen = iota
	ScreenLeads
	ScreenFollowUps
	ScreenStatistics
	screenCount
)

// formKind identifies the modal form currently covering the screen.
type formKind int

const (
	formNone formKind = iota
	formLead
	formFollowUp
)

// screenRefreshMsg asks the root model to (re)start the fetch for a
// screen.
type screenRefreshMsg struct {
	screen Screen
}

// Model holds the root TUI state. Each screen owns its raw collection
// and moves Loading to Ready exactly once per fetch; mutations patch
// raw data only after the backend confirms.
type Model struct {
	theme   themes.Theme
	config  Config
	keymap  KeyMap
	client  *api.Client
	cache   *cache.Store
	baseCtx context.Context
	cancels [screenCount]context.CancelFunc

	screen    Screen
	loaded    [screenCount]bool
	screenErr [screenCount]error

	dashboard    components.DashboardModel
	leadList     components.LeadListModel
	followUpList components.FollowUpListModel
	statistics   components.StatisticsModel

	leads      []model.Lead
	branches   []model.Branch
	courses    []model.Course
	sources    []model.LeadSource
	employees  []model.Employee
	refsLoaded bool

	form                formKind
	leadForm            components.LeadFormModel
	followUpForm        components.FollowUpFormModel
	pendingLeadEdit     *components.EditLeadMsg
	pendingFollowUpEdit *components.EditFollowUpMsg

	notification    string
	notificationErr bool

	width    int
	height   int
	quitting bool
}

// newModel creates a new root model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	return Model{
		theme:        cfg.Theme,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		client:       cfg.Client,
		cache:        cfg.Cache,
		baseCtx:      ctx,
		screen:       ScreenDashboard,
		dashboard:    components.NewDashboard(cfg.Theme),
		leadList:     components.NewLeadList(cfg.Theme),
		followUpList: components.NewFollowUpList(cfg.Theme),
		statistics:   components.NewStatistics(cfg.Theme),
		width:        cfg.Width,
		height:       cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		func() tea.Msg { return screenRefreshMsg{screen: ScreenDashboard} },
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeAll(msg)
		return m, nil

	case screenRefreshMsg:
		return m.startFetch(msg.screen)

	case leadsLoadedMsg:
		return m.handleLeadsLoaded(msg)

	case followUpsLoadedMsg:
		return m.handleFollowUpsLoaded(msg)

	case dashboardLoadedMsg:
		m.loaded[ScreenDashboard] = true
		m.screenErr[ScreenDashboard] = msg.err
		if msg.err == nil {
			m.dashboard = m.dashboard.SetData(components.DashboardData{
				Stats:        msg.stats,
				BySource:     msg.bySource,
				ByBranch:     msg.byBranch,
				FollowUpPerf: msg.followUpPerf,
				Conversion:   msg.conversion,
				RecentLeads:  msg.recentLeads,
				Upcoming:     msg.upcoming,
			})
		}
		return m, nil

	case statisticsLoadedMsg:
		m.loaded[ScreenStatistics] = true
		m.screenErr[ScreenStatistics] = msg.err
		if msg.err == nil {
			m.statistics = m.statistics.SetData(components.StatisticsData{
				Employees: msg.employees,
				Daily:     msg.daily,
				Weekly:    msg.weekly,
				Monthly:   msg.monthly,
				BySource:  msg.bySource,
				ByBranch:  msg.byBranch,
			})
		}
		return m, nil

	case formDataLoadedMsg:
		return m.handleFormDataLoaded(msg)

	case components.EditLeadMsg:
		return m.openLeadForm(msg)

	case components.EditFollowUpMsg:
		return m.openFollowUpForm(msg)

	case components.CancelFormMsg:
		m.form = formNone
		return m, nil

	case components.LeadSubmitMsg:
		return m, m.saveLead(m.screenCtx(ScreenLeads), msg.Lead)

	case components.FollowUpSubmitMsg:
		return m, m.saveFollowUp(m.screenCtx(ScreenFollowUps), msg.FollowUp)

	case components.DeleteLeadRequestMsg:
		return m, m.deleteLead(m.screenCtx(ScreenLeads), msg.ID)

	case leadSavedMsg:
		if msg.err != nil {
			return m.notifyError(common.UserMessage(msg.err))
		}
		m.form = formNone
		m.leadList = m.leadList.UpsertLead(msg.lead)
		return m.notify("Lead saved")

	case followUpSavedMsg:
		if msg.err != nil {
			return m.notifyError(common.UserMessage(msg.err))
		}
		m.form = formNone
		m.followUpList = m.followUpList.UpsertFollowUp(msg.followUp)
		return m.notify("Follow-up saved")

	case leadDeletedMsg:
		if msg.err != nil {
			return m.notifyError(common.UserMessage(msg.err))
		}
		m.leadList = m.leadList.RemoveLead(msg.id)
		return m.notify("Lead deleted")

	case notificationMsg:
		m.notification = msg.text
		m.notificationErr = msg.isError
		return m, nil

	case clearNotificationMsg:
		m.notification = ""
		m.notificationErr = false
		return m, nil
	}

	return m.updateActive(msg)
}

// handleKey routes keyboard input: the active form first, then global
// shortcuts, then the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	if m.form != formNone {
		return m.updateActive(msg)
	}

	// A focused search input owns everything except force-quit.
	searchActive := (m.screen == ScreenLeads && m.leadList.Searching()) ||
		(m.screen == ScreenFollowUps && m.followUpList.Searching())
	if !searchActive {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m.quit()
		case key.Matches(msg, m.keymap.Dashboard):
			return m.switchScreen(ScreenDashboard)
		case key.Matches(msg, m.keymap.Leads):
			return m.switchScreen(ScreenLeads)
		case key.Matches(msg, m.keymap.FollowUps):
			return m.switchScreen(ScreenFollowUps)
		case key.Matches(msg, m.keymap.Statistics):
			return m.switchScreen(ScreenStatistics)
		case key.Matches(msg, m.keymap.Refresh):
			return m.startFetch(m.screen)
		}
	}

	return m.updateActive(msg)
}

// updateActive delegates a message to the form or screen in focus.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.form {
	case formLead:
		m.leadForm, cmd = m.leadForm.Update(msg)
		return m, cmd
	case formFollowUp:
		m.followUpForm, cmd = m.followUpForm.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case ScreenLeads:
		m.leadList, cmd = m.leadList.Update(msg)
	case ScreenFollowUps:
		m.followUpList, cmd = m.followUpList.Update(msg)
	case ScreenStatistics:
		m.statistics, cmd = m.statistics.Update(msg)
	}
	return m, cmd
}

// switchScreen tears down the outgoing screen's in-flight fetch and
// starts the incoming screen's fetch on first visit.
func (m Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	if s == m.screen {
		return m, nil
	}
	if cancel := m.cancels[m.screen]; cancel != nil {
		cancel()
		m.cancels[m.screen] = nil
		// A cancelled fetch never delivers, so the screen must refetch
		// next time unless it already reached Ready.
	}

	m.screen = s
	if !m.loaded[s] {
		return m.startFetch(s)
	}
	return m, nil
}

// startFetch begins (or restarts) the fetch for a screen, replacing any
// in-flight one.
func (m Model) startFetch(s Screen) (tea.Model, tea.Cmd) {
	if m.client == nil {
		return m, nil
	}
	if cancel := m.cancels[s]; cancel != nil {
		cancel()
	}
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.cancels[s] = cancel
	m.loaded[s] = false
	m.screenErr[s] = nil

	switch s {
	case ScreenDashboard:
		return m, m.loadDashboard(ctx)
	case ScreenLeads:
		return m, m.loadLeads(ctx)
	case ScreenFollowUps:
		return m, m.loadFollowUps(ctx)
	case ScreenStatistics:
		return m, m.loadStatistics(ctx)
	}
	return m, nil
}

// screenCtx returns the live context for a screen, falling back to the
// base context when no fetch is in flight.
func (m Model) screenCtx(Screen) context.Context {
	// Mutations are not torn down on screen switches; only quitting
	// cancels them.
	return m.baseCtx
}

func (m Model) handleLeadsLoaded(msg leadsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loaded[ScreenLeads] = true
	if msg.err != nil && len(msg.leads) == 0 {
		m.screenErr[ScreenLeads] = msg.err
		return m, nil
	}

	m.screenErr[ScreenLeads] = nil
	m.leads = msg.leads
	m.leadList = m.leadList.SetLeads(msg.leads, msg.stale)
	if msg.stale {
		return m.notifyError("Refresh failed, showing cached data: " + common.UserMessage(msg.err))
	}
	return m, nil
}

func (m Model) handleFollowUpsLoaded(msg followUpsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loaded[ScreenFollowUps] = true
	if msg.err != nil && len(msg.followUps) == 0 {
		m.screenErr[ScreenFollowUps] = msg.err
		return m, nil
	}

	m.screenErr[ScreenFollowUps] = nil
	m.followUpList = m.followUpList.SetFollowUps(msg.followUps, msg.stale)
	if msg.stale {
		return m.notifyError("Refresh failed, showing cached data: " + common.UserMessage(msg.err))
	}
	return m, nil
}

// openLeadForm opens the lead form, fetching the reference collections
// first if they are not loaded yet.
func (m Model) openLeadForm(msg components.EditLeadMsg) (tea.Model, tea.Cmd) {
	if !m.refsLoaded {
		m.pendingLeadEdit = &msg
		return m, m.loadFormData(m.screenCtx(m.screen))
	}

	m.leadForm = components.NewLeadForm(msg.Lead, msg.IsNew, m.branches, m.courses, m.sources, m.employees, m.theme)
	m.leadForm = m.leadForm.Resize(m.width, m.height)
	m.form = formLead
	return m, nil
}

// openFollowUpForm opens the follow-up form, fetching references first
// if needed.
func (m Model) openFollowUpForm(msg components.EditFollowUpMsg) (tea.Model, tea.Cmd) {
	if !m.refsLoaded {
		m.pendingFollowUpEdit = &msg
		return m, m.loadFormData(m.screenCtx(m.screen))
	}

	m.followUpForm = components.NewFollowUpForm(msg.FollowUp, msg.IsNew, m.leads, m.employees, m.theme)
	m.followUpForm = m.followUpForm.Resize(m.width, m.height)
	m.form = formFollowUp
	return m, nil
}

func (m Model) handleFormDataLoaded(msg formDataLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.pendingLeadEdit = nil
		m.pendingFollowUpEdit = nil
		return m.notifyError(common.UserMessage(msg.err))
	}

	m.branches = msg.branches
	m.courses = msg.courses
	m.sources = msg.sources
	m.employees = msg.employees
	m.refsLoaded = true

	if pending := m.pendingLeadEdit; pending != nil {
		m.pendingLeadEdit = nil
		return m.openLeadForm(*pending)
	}
	if pending := m.pendingFollowUpEdit; pending != nil {
		m.pendingFollowUpEdit = nil
		return m.openFollowUpForm(*pending)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	for i, cancel := range m.cancels {
		if cancel != nil {
			cancel()
			m.cancels[i] = nil
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) resizeAll(msg tea.WindowSizeMsg) {
	contentHeight := msg.Height - 2
	m.dashboard = m.dashboard.Resize(msg.Width, contentHeight)
	m.leadList = m.leadList.Resize(msg.Width, contentHeight)
	m.followUpList = m.followUpList.Resize(msg.Width, contentHeight)
	m.statistics = m.statistics.Resize(msg.Width, contentHeight)
	m.leadForm = m.leadForm.Resize(msg.Width, contentHeight)
	m.followUpForm = m.followUpForm.Resize(msg.Width, contentHeight)
}

func (m Model) notify(text string) (tea.Model, tea.Cmd) {
	m.notification = text
	m.notificationErr = false
	return m, clearNotificationAfter()
}

func (m Model) notifyError(text string) (tea.Model, tea.Cmd) {
	m.notification = text
	m.notificationErr = true
	return m, clearNotificationAfter()
}
