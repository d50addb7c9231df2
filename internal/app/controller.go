// Package app implements the interaction state machine: which mode the
// interface is in, how key presses move between modes, and which task store
// operation each press triggers.
package app

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/task"
)

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Field names the edit buffer that receives keystrokes.
type Field int

const (
	FieldTitle Field = iota
	FieldDetail
)

func (f Field) toggle() Field {
	if f == FieldTitle {
		return FieldDetail
	}
	return FieldTitle
}

// EditSession is the draft for creating or revising one task. It exists only
// while the controller is in ModeEdit.
type EditSession struct {
	// Target is the index being revised; meaningful only when Existing.
	Target   int
	Existing bool
	Field    Field
	Title    string
	Detail   string
}

// state is the sealed set of modes. Only editState carries a session, so a
// draft cannot outlive Edit.
type state interface {
	mode() Mode
}

type viewState struct{}

type helpState struct{}

type editState struct {
	session EditSession
}

func (viewState) mode() Mode  { return ModeView }
func (helpState) mode() Mode  { return ModeHelp }
func (*editState) mode() Mode { return ModeEdit }

type Controller struct {
	store  *task.Store
	keys   KeyMap
	state  state
	exit   bool
	notice string
}

func NewController(store *task.Store, keys KeyMap) *Controller {
	return &Controller{
		store: store,
		keys:  keys,
		state: viewState{},
	}
}

func (c *Controller) Mode() Mode {
	return c.state.mode()
}

// Session returns a copy of the live edit session, or false outside Edit.
func (c *Controller) Session() (EditSession, bool) {
	if s, ok := c.state.(*editState); ok {
		return s.session, true
	}
	return EditSession{}, false
}

func (c *Controller) Exit() bool {
	return c.exit
}

// Notice is the status line left by the last notable transition.
func (c *Controller) Notice() string {
	return c.notice
}

func (c *Controller) SetNotice(s string) {
	c.notice = s
}

func (c *Controller) Keys() KeyMap {
	return c.keys
}

func (c *Controller) Store() *task.Store {
	return c.store
}

// HandleKey applies one key press. A non-nil error means the controller
// broke a store invariant and the run loop should stop.
func (c *Controller) HandleKey(msg tea.KeyMsg) error {
	switch s := c.state.(type) {
	case viewState:
		c.updateView(msg)
		return nil
	case *editState:
		return c.updateEdit(s, msg)
	case helpState:
		c.updateHelp(msg)
		return nil
	default:
		return fmt.Errorf("unhandled mode %T", s)
	}
}

func (c *Controller) updateView(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Quit):
		c.exit = true
	case key.Matches(msg, c.keys.New):
		c.state = &editState{session: EditSession{Field: FieldTitle}}
		c.notice = "New task: enter moves to detail, enter again saves, esc cancels"
	case key.Matches(msg, c.keys.Down):
		c.store.SelectNext()
	case key.Matches(msg, c.keys.Up):
		c.store.SelectPrevious()
	case key.Matches(msg, c.keys.Help):
		c.state = helpState{}
	case key.Matches(msg, c.keys.Edit):
		idx, ok := c.store.Selected()
		if !ok {
			return
		}
		t, err := c.store.Task(idx)
		if err != nil {
			return
		}
		c.state = &editState{session: EditSession{
			Target:   idx,
			Existing: true,
			Field:    FieldTitle,
			Title:    t.Title,
			Detail:   t.Detail,
		}}
		c.notice = fmt.Sprintf("Editing %q", t.Title)
	case key.Matches(msg, c.keys.Delete):
		t, ok := c.store.SelectedTask()
		if c.store.DeleteSelected() && ok {
			c.notice = fmt.Sprintf("Deleted %q", t.Title)
		}
	case key.Matches(msg, c.keys.Toggle):
		if status, ok := c.store.CycleStatusSelected(); ok {
			c.notice = "Marked " + status.String()
		}
	}
}

func (c *Controller) updateEdit(s *editState, msg tea.KeyMsg) error {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.state = viewState{}
		c.notice = "Edit cancelled"
	case key.Matches(msg, c.keys.SwitchField):
		s.session.Field = s.session.Field.toggle()
	case key.Matches(msg, c.keys.Backspace):
		buf := s.session.buffer()
		*buf = dropLastRune(*buf)
	case key.Matches(msg, c.keys.Confirm):
		if s.session.Field == FieldTitle {
			s.session.Field = FieldDetail
			return nil
		}
		return c.commit(s.session)
	default:
		if text := printableText(msg); text != "" {
			buf := s.session.buffer()
			*buf += text
		}
	}
	return nil
}

// commit persists the draft into the store and returns to View. A draft with
// an empty title is dropped without a notice.
func (c *Controller) commit(s EditSession) error {
	c.state = viewState{}
	if s.Title == "" {
		c.notice = ""
		return nil
	}
	if s.Existing {
		if err := c.store.Update(s.Target, s.Title, s.Detail); err != nil {
			return fmt.Errorf("commit edit: %w", err)
		}
		c.notice = fmt.Sprintf("Updated %q", s.Title)
		return nil
	}
	c.store.Insert(s.Title, s.Detail, task.Upcoming)
	c.notice = fmt.Sprintf("Added %q", s.Title)
	return nil
}

func (c *Controller) updateHelp(msg tea.KeyMsg) {
	if key.Matches(msg, c.keys.Cancel) {
		c.state = viewState{}
	}
}

func (s *EditSession) buffer() *string {
	if s.Field == FieldDetail {
		return &s.Detail
	}
	return &s.Title
}

// printableText returns the printable runes of a text key press, dropping
// control runes such as newlines, tabs and ESC that a paste can carry.
func printableText(msg tea.KeyMsg) string {
	if msg.Alt || (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, string(msg.Runes))
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
