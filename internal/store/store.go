// Package store owns the set of selected sections and keeps it
// persisted across runs.
package store

import (
	"errors"
	"fmt"

	"mihorario/internal/horario"
)

var ErrNotSelected = errors.New("course not selected")

// Persister saves and restores the ordered selection list. The zero
// implementation is Null, which keeps everything in memory only.
type Persister interface {
	Load() ([]horario.Selection, error)
	Save(selections []horario.Selection) error
}

// Null is a Persister that stores nothing.
type Null struct{}

func (Null) Load() ([]horario.Selection, error) { return nil, nil }
func (Null) Save([]horario.Selection) error     { return nil }

// Store is the single writer over the current selections. Order is
// insertion order; one selection per course code. Mutations run the
// conflict check first and persist synchronously on success. A persist
// failure is reported to the caller but the in-memory change stands,
// so the session keeps working when the disk does not.
type Store struct {
	selections []horario.Selection
	persister  Persister
}

// New restores a Store from the persister. A load failure starts an
// empty store rather than failing the program.
func New(p Persister) *Store {
	if p == nil {
		p = Null{}
	}
	s := &Store{persister: p}
	if loaded, err := p.Load(); err == nil {
		s.selections = loaded
	}
	return s
}

// Selections returns the current selections in insertion order. The
// returned slice is a copy; callers may not mutate store state through
// it.
func (s *Store) Selections() []horario.Selection {
	out := make([]horario.Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Len reports how many courses are selected.
func (s *Store) Len() int {
	return len(s.selections)
}

// Has reports whether a course has a selected section.
func (s *Store) Has(courseCode string) bool {
	_, ok := s.find(courseCode)
	return ok
}

// Get returns the selection for a course code.
func (s *Store) Get(courseCode string) (horario.Selection, error) {
	i, ok := s.find(courseCode)
	if !ok {
		return horario.Selection{}, fmt.Errorf("%w: %s", ErrNotSelected, courseCode)
	}
	return s.selections[i], nil
}

// Add selects a section. When the course already has a selection the
// new section replaces it in place, keeping its list position. A
// non-nil Conflict means the candidate collides with another course
// and nothing changed.
func (s *Store) Add(sel horario.Selection) (*horario.Conflict, error) {
	if c := horario.FindConflict(s.selections, sel, sel.CourseCode); c != nil {
		return c, nil
	}
	if i, ok := s.find(sel.CourseCode); ok {
		s.selections[i] = sel
	} else {
		s.selections = append(s.selections, sel)
	}
	return nil, s.persist()
}

// Remove drops the selection for a course code. Removing a course
// that is not selected is a no-op.
func (s *Store) Remove(courseCode string) error {
	i, ok := s.find(courseCode)
	if !ok {
		return nil
	}
	s.selections = append(s.selections[:i], s.selections[i+1:]...)
	return s.persist()
}

// Clear drops every selection.
func (s *Store) Clear() error {
	s.selections = nil
	return s.persist()
}

// ReplaceAll swaps the whole selection set, used when loading a saved
// schedule or applying a generated one. The new set is validated to be
// internally conflict free before anything changes.
func (s *Store) ReplaceAll(selections []horario.Selection) (*horario.Conflict, error) {
	for i, sel := range selections {
		if c := horario.FindConflict(selections[:i], sel, sel.CourseCode); c != nil {
			return c, nil
		}
	}
	s.selections = make([]horario.Selection, len(selections))
	copy(s.selections, selections)
	return nil, s.persist()
}

func (s *Store) find(courseCode string) (int, bool) {
	for i, sel := range s.selections {
		if sel.CourseCode == courseCode {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) persist() error {
	if err := s.persister.Save(s.selections); err != nil {
		return fmt.Errorf("persisting selections: %w", err)
	}
	return nil
}
