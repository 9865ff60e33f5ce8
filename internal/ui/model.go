package ui

import (
	"reflect"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
	"github.com/Bilal-AKAG/autogitignore/internal/theme"
	"github.com/Bilal-AKAG/autogitignore/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the template picker.
type Model struct {
	session   *state.Session
	catalog   *catalog.Service
	outputDir string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	spin             spinner.Model
	queryCursor      cursor.Model
	queryCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for one picker session.
func NewModel(svc *catalog.Service, outputDir string, width, height int, showFooter bool, verbose bool) *Model {
	m := &Model{
		session:    state.NewSession(),
		catalog:    svc,
		outputDir:  outputDir,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if styles.Loading != nil {
		sp.Style = styles.Loading.Copy()
	}
	m.spin = sp
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCatalogCmd(), tickCmd(), m.spin.Tick}
	if cmd := m.queryCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(catalogLoadedMsg{}):  m.handleCatalogLoadedMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncViewport() {
	m.session.EnsureCursorVisible(m.maxVisibleItems())
}
