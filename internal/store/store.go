package store

import (
	"errors"
	"fmt"

	"github.com/dori/todo/internal/model"
	"github.com/dori/todo/internal/tasks"
)

// ErrNotFound is returned by ToggleTask and DeleteTask for an unknown id
// when the store was built WithStrictIDs.
var ErrNotFound = errors.New("task not found")

// ErrDuplicateID is returned by CheckSeed when two tasks share an id
var ErrDuplicateID = errors.New("duplicate task id")

// CheckSeed reports a seed that would break id uniqueness. New trusts its
// seed, so callers building one by hand should check it first.
func CheckSeed(seed []model.Task) error {
	if id, ok := tasks.DuplicateID(seed); ok {
		return fmt.Errorf("task %d: %w", id, ErrDuplicateID)
	}
	return nil
}

// State is a value copy of the application state
type State struct {
	Tasks  []model.Task
	Filter model.Filter
	Theme  model.Theme
}

// Store owns the application state. Every operation swaps in a freshly
// computed State; nothing is mutated in place. A Store is used from the
// UI event loop only and is not safe for concurrent use.
type Store struct {
	state  State
	strict bool
}

// Option configures a Store
type Option func(*Store)

// WithStrictIDs makes ToggleTask and DeleteTask report unknown ids
func WithStrictIDs() Option {
	return func(s *Store) {
		s.strict = true
	}
}

// New creates a store seeded with a copy of seed, filter All and the
// light theme.
func New(seed []model.Task, opts ...Option) *Store {
	s := &Store{
		state: State{
			Tasks:  tasks.Visible(seed, model.FilterAll),
			Filter: model.FilterAll,
			Theme:  model.ThemeLight,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask appends a task with the next free id
func (s *Store) AddTask(title string, completed bool) model.Task {
	t := model.Task{
		ID:        tasks.NextID(s.state.Tasks),
		Title:     title,
		Completed: completed,
	}
	s.replace(tasks.Append(s.state.Tasks, t))
	return t
}

// ToggleTask flips the completion of the task with id
func (s *Store) ToggleTask(id int) error {
	if err := s.check(id); err != nil {
		return err
	}
	s.replace(tasks.Toggle(s.state.Tasks, id))
	return nil
}

// DeleteTask removes the task with id
func (s *Store) DeleteTask(id int) error {
	if err := s.check(id); err != nil {
		return err
	}
	s.replace(tasks.Remove(s.state.Tasks, id))
	return nil
}

// ClearCompletedTasks drops every completed task and returns how many
// were removed.
func (s *Store) ClearCompletedTasks() int {
	before := len(s.state.Tasks)
	s.replace(tasks.ClearCompleted(s.state.Tasks))
	return before - len(s.state.Tasks)
}

// SetFilter changes what is displayed; tasks are untouched
func (s *Store) SetFilter(f model.Filter) {
	next := s.Snapshot()
	next.Filter = f
	s.state = next
}

// SetTheme sets the display theme
func (s *Store) SetTheme(t model.Theme) {
	next := s.Snapshot()
	next.Theme = t
	s.state = next
}

// ToggleTheme switches between light and dark and returns the new theme
func (s *Store) ToggleTheme() model.Theme {
	s.SetTheme(s.state.Theme.Toggle())
	return s.state.Theme
}

// Tasks returns a copy of every stored task in insertion order
func (s *Store) Tasks() []model.Task {
	return tasks.Visible(s.state.Tasks, model.FilterAll)
}

func (s *Store) Filter() model.Filter { return s.state.Filter }
func (s *Store) Theme() model.Theme   { return s.state.Theme }
func (s *Store) Len() int             { return len(s.state.Tasks) }

// VisibleTasks returns the tasks shown under the current filter
func (s *Store) VisibleTasks() []model.Task {
	return tasks.Visible(s.state.Tasks, s.state.Filter)
}

// RemainingCount is the footer's "items left" figure for the visible list
func (s *Store) RemainingCount() int {
	return tasks.Remaining(s.VisibleTasks(), s.state.Filter)
}

// Snapshot returns a copy of the whole state
func (s *Store) Snapshot() State {
	return State{
		Tasks:  s.Tasks(),
		Filter: s.state.Filter,
		Theme:  s.state.Theme,
	}
}

func (s *Store) replace(list []model.Task) {
	s.state = State{
		Tasks:  list,
		Filter: s.state.Filter,
		Theme:  s.state.Theme,
	}
}

func (s *Store) check(id int) error {
	if !s.strict {
		return nil
	}
	if _, ok := tasks.Find(s.state.Tasks, id); !ok {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}
