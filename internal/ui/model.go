package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"nestlist/internal/config"
	"nestlist/internal/eventbus"
	"nestlist/internal/listview"
)

// colorStripHeight is the cross-axis size reserved for the color list.
const colorStripHeight = 5

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	activeStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("99"))
	inactiveStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// Tab identifies which of the two demo lists has focus.
type Tab int

const (
	TabPlanner Tab = iota
	TabColors
)

// appKeyMap holds the application-level bindings on top of the widget's.
type appKeyMap struct {
	Quit key.Binding
	Help key.Binding
	Tab  key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list"),
		),
	}
}

// footerKeyMap merges widget and app bindings for the help footer.
type footerKeyMap struct {
	list listview.KeyMap
	app  appKeyMap
}

// ShortHelp implements help.KeyMap.
func (k footerKeyMap) ShortHelp() []key.Binding {
	bindings := k.list.ShortHelp()
	return append(bindings, k.app.Tab, k.app.Help, k.app.Quit)
}

// FullHelp implements help.KeyMap.
func (k footerKeyMap) FullHelp() [][]key.Binding {
	return append(k.list.FullHelp(), []key.Binding{k.app.Tab, k.app.Help, k.app.Quit})
}

// Model is the demo application model: a vertical weekly planner with
// expandable days and a horizontal color strip below it.
type Model struct {
	planner *listview.Widget
	colors  *listview.Widget
	keys    appKeyMap
	help    help.Model
	helpOps *HelpOps
	render  *HelpRenderer
	logger  zerolog.Logger
	active  Tab
	width   int
	height  int
}

// NewModel creates the demo model from configuration.
func NewModel(cfg *config.Config, bus eventbus.EventBus, logger zerolog.Logger) *Model {
	plannerAxis := listview.Vertical
	if cfg.Axis == "horizontal" {
		plannerAxis = listview.Horizontal
	}

	planner := listview.NewWidget(plannerAxis, bus)
	planner.State().SetWrapAround(cfg.WrapAround)
	planner.SetItems(demoDays())

	colors := listview.NewWidget(listview.Horizontal, bus)
	colors.State().SetWrapAround(cfg.WrapAround)
	colors.SetItems(demoColors())

	return &Model{
		planner: planner,
		colors:  colors,
		keys:    defaultAppKeyMap(),
		help:    help.New(),
		helpOps: NewHelpOps(nil),
		render:  NewHelpRenderer(),
		logger:  logger,
	}
}

// SetProgram hands the model the running program so help can release the
// terminal for the pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeWidgets()
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("help pager failed")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			content := m.render.RenderHelpContent()
			return m, func() tea.Msg {
				return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
			}

		case key.Matches(msg, m.keys.Tab):
			// Leaving a list drops its selection, like switching panes.
			m.activeWidget().State().ClearSelection()
			if m.active == TabPlanner {
				m.active = TabColors
			} else {
				m.active = TabPlanner
			}
			return m, nil
		}

		return m, m.activeWidget().Update(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render("nestlist")

	plannerStyle, colorsStyle := activeStyle, inactiveStyle
	if m.active == TabColors {
		plannerStyle, colorsStyle = inactiveStyle, activeStyle
	}

	footer := m.help.View(footerKeyMap{
		list: m.activeWidget().KeyMap(),
		app:  m.keys,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		plannerStyle.Render(m.planner.View()),
		colorsStyle.Render(m.colors.View()),
		footer,
	)
}

func (m *Model) activeWidget() *listview.Widget {
	if m.active == TabColors {
		return m.colors
	}
	return m.planner
}

// resizeWidgets splits the window between the two lists, leaving room
// for the title, the help footer and the list borders.
func (m *Model) resizeWidgets() {
	innerWidth := m.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	plannerHeight := m.height - colorStripHeight - 6
	if plannerHeight < 1 {
		plannerHeight = 1
	}

	m.planner.SetSize(innerWidth, plannerHeight)
	m.colors.SetSize(innerWidth, colorStripHeight)
	m.help.Width = m.width
}
