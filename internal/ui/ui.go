package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskdeck/internal/app"
	"taskdeck/internal/config"
	"taskdeck/internal/task"
)

type Model struct {
	ctrl   *app.Controller
	logger *log.Logger
	help   help.Model
	title  textinput.Model
	detail textinput.Model
	width  int
	height int
	err    error
}

// Run takes over the terminal until the user quits. The alternate screen is
// released by bubbletea on every exit path.
func Run(store *task.Store, cfg config.Config, logger *log.Logger, configPath string, firstLaunch bool, opts ...tea.ProgramOption) (err error) {
	m := New(store, cfg, logger)
	if firstLaunch {
		m.ctrl.SetNotice(fmt.Sprintf("Wrote default config to %s. Press ? for help.", configPath))
	}

	logger.Info("starting", "config", configPath, "tasks", store.Len())
	defer func() {
		logger.Info("stopped", "tasks", store.Len(), "err", err)
	}()

	program := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	final, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

func New(store *task.Store, cfg config.Config, logger *log.Logger) Model {
	return Model{
		ctrl:   app.NewController(store, app.NewKeyMap(cfg.Keys)),
		logger: logger,
		help:   help.New(),
		title:  newInput("Task title"),
		detail: newInput("Details (optional)"),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width - 4
		m.title.Width = msg.Width - 16
		m.detail.Width = msg.Width - 16
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.logger.Info("interrupted")
		return m, tea.Quit
	}

	before, tasks := m.ctrl.Mode(), m.ctrl.Store().Tasks()
	if err := m.ctrl.HandleKey(msg); err != nil {
		m.logger.Error("controller failed", "err", err)
		m.err = err
		return m, tea.Quit
	}
	after := m.ctrl.Mode()
	m.logger.Debug("key", "key", msg.String(), "from", before, "to", after)
	if now := m.ctrl.Store().Tasks(); !slices.Equal(tasks, now) {
		m.logger.Info("tasks changed", "before", len(tasks), "after", len(now), "notice", m.ctrl.Notice())
	}

	if m.ctrl.Exit() {
		return m, tea.Quit
	}
	m.syncInputs()
	return m, nil
}

// syncInputs mirrors the edit session into the text inputs used to draw it.
func (m *Model) syncInputs() {
	s, ok := m.ctrl.Session()
	if !ok {
		m.title.Blur()
		m.detail.Blur()
		m.title.SetValue("")
		m.detail.SetValue("")
		return
	}
	m.title.SetValue(s.Title)
	m.title.CursorEnd()
	m.detail.SetValue(s.Detail)
	m.detail.CursorEnd()
	if s.Field == app.FieldTitle {
		m.title.Focus()
		m.detail.Blur()
	} else {
		m.detail.Focus()
		m.title.Blur()
	}
}

// Err is the fatal error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}
