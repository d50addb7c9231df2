package task

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("task index out of range")

// Store is an ordered sequence of tasks plus an optional selection.
// Position is the only address a task has. Not safe for concurrent use.
type Store struct {
	tasks    []Task
	selected int
	hasSel   bool
}

func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.tasks = append(s.tasks, tasks...)
	return s
}

// Insert appends a task and returns its index. The selection is left alone.
func (s *Store) Insert(title, detail string, status Status) int {
	s.tasks = append(s.tasks, Task{Title: title, Detail: detail, Status: status})
	return len(s.tasks) - 1
}

// Update replaces title and detail of the task at index, keeping its status.
func (s *Store) Update(index int, title, detail string) error {
	if !s.valid(index) {
		return fmt.Errorf("update %d of %d: %w", index, len(s.tasks), ErrIndexOutOfRange)
	}
	s.tasks[index].Title = title
	s.tasks[index].Detail = detail
	return nil
}

// DeleteSelected removes the selected task. The selection keeps its numeric
// position, is clamped to the new last index, or is cleared when the store
// becomes empty. It reports whether a task was removed.
func (s *Store) DeleteSelected() bool {
	if !s.hasSel {
		return false
	}
	idx := s.selected
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	switch {
	case len(s.tasks) == 0:
		s.selected, s.hasSel = 0, false
	case idx >= len(s.tasks):
		s.selected = len(s.tasks) - 1
	}
	return true
}

func (s *Store) SelectNext() {
	n := len(s.tasks)
	if n == 0 {
		return
	}
	if !s.hasSel {
		s.selected, s.hasSel = 0, true
		return
	}
	s.selected = wrapIndex(s.selected+1, n)
}

func (s *Store) SelectPrevious() {
	n := len(s.tasks)
	if n == 0 {
		return
	}
	if !s.hasSel {
		s.selected, s.hasSel = n-1, true
		return
	}
	s.selected = wrapIndex(s.selected-1, n)
}

// CycleStatusSelected advances the selected task's status. It reports the
// new status, or false when nothing is selected.
func (s *Store) CycleStatusSelected() (Status, bool) {
	if !s.hasSel {
		return 0, false
	}
	t := &s.tasks[s.selected]
	t.Status = t.Status.Next()
	return t.Status, true
}

// Selected returns the selected index, or false when there is no selection.
func (s *Store) Selected() (int, bool) {
	return s.selected, s.hasSel
}

func (s *Store) SelectedTask() (Task, bool) {
	if !s.hasSel {
		return Task{}, false
	}
	return s.tasks[s.selected], true
}

func (s *Store) Task(index int) (Task, error) {
	if !s.valid(index) {
		return Task{}, fmt.Errorf("task %d of %d: %w", index, len(s.tasks), ErrIndexOutOfRange)
	}
	return s.tasks[index], nil
}

// Tasks returns a copy of the sequence in curation order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.tasks)
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
