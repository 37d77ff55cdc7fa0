// Package selection holds single- and multi-select state for a menu.
//
// Both models support controlled use, where the caller owns the state and
// every mutation only computes and emits the next state, and uncontrolled
// use, where the model keeps the state itself and emits the same callback so
// callers can observe it.
package selection

import (
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// Guard reports whether an item may take part in selection at all.
func Guard(item model.MenuItem) bool {
	return item.Selectable()
}

// Commit is the result of a single-select leaf choice.
type Commit struct {
	Value any
	Path  []any
}

// SingleOptions configures a Single model.
type SingleOptions struct {
	// Controlled makes the caller the owner of Value.
	Controlled bool
	Value      any
	HasValue   bool
	OnCommit   func(Commit)
}

// Single tracks one nullable value and the node path that produced it.
type Single struct {
	controlled bool
	value      any
	hasValue   bool
	path       []any
	onCommit   func(Commit)
}

// NewSingle creates a single-select model.
func NewSingle(opts SingleOptions) *Single {
	return &Single{
		controlled: opts.Controlled,
		value:      opts.Value,
		hasValue:   opts.HasValue,
		onCommit:   opts.OnCommit,
	}
}

// SelectLeaf replaces the current value with value and path and emits the
// commit. Uncontrolled models store the result; controlled models leave their
// state for the caller to push back with SetValue.
func (s *Single) SelectLeaf(value any, path []any) Commit {
	commit := Commit{Value: value, Path: append([]any(nil), path...)}
	if !s.controlled {
		s.value = value
		s.hasValue = true
		s.path = commit.Path
	}
	if s.onCommit != nil {
		s.onCommit(Commit{Value: commit.Value, Path: append([]any(nil), commit.Path...)})
	}
	return commit
}

// SetValue syncs the externally owned value.
func (s *Single) SetValue(value any, path []any) {
	s.value = value
	s.hasValue = true
	s.path = append([]any(nil), path...)
}

// Clear drops the current value.
func (s *Single) Clear() {
	s.value = nil
	s.hasValue = false
	s.path = nil
}

// Value returns the current value and whether one is set.
func (s *Single) Value() (any, bool) {
	return s.value, s.hasValue
}

// Path returns a copy of the path that produced the current value.
func (s *Single) Path() []any {
	return append([]any(nil), s.path...)
}

// Controlled reports whether the caller owns the value.
func (s *Single) Controlled() bool {
	return s.controlled
}

// MultiOptions configures a Multi model. A non-nil Selected makes the model
// controlled.
type MultiOptions struct {
	Selected []string
	OnChange func(ids []string)
}

// Multi tracks a set of selected ids.
type Multi struct {
	controlled bool
	set        *OrderedSet
	onChange   func([]string)
}

// NewMulti creates a multi-select model.
func NewMulti(opts MultiOptions) *Multi {
	return &Multi{
		controlled: opts.Selected != nil,
		set:        NewOrderedSet(opts.Selected...),
		onChange:   opts.OnChange,
	}
}

// Toggle flips membership of id and emits the full next set. Toggling never
// closes the menu.
func (m *Multi) Toggle(id string) []string {
	next := m.set.Clone()
	next.Toggle(id)
	if !m.controlled {
		m.set = next
	}
	ids := next.IDs()
	if m.onChange != nil {
		m.onChange(next.IDs())
	}
	return ids
}

// SetSelected syncs the externally owned set.
func (m *Multi) SetSelected(ids []string) {
	m.set = NewOrderedSet(ids...)
}

// Selected returns the members in insertion order.
func (m *Multi) Selected() []string {
	return m.set.IDs()
}

// Contains reports whether id is selected.
func (m *Multi) Contains(id string) bool {
	return m.set.Contains(id)
}

// Controlled reports whether the caller owns the set.
func (m *Multi) Controlled() bool {
	return m.controlled
}
