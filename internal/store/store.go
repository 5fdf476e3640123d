// Package store owns the in-memory roster and the file it is persisted to.
package store

import (
	"sync"

	"roster/internal/codec"
	"roster/internal/model"
)

// Roster is the store surface the services depend on.
type Roster interface {
	All() []model.Student
	Len() int
	Append(s model.Student)
	PersistAll() error
	Path() string
}

var _ Roster = (*Store)(nil)

// Store keeps students in insertion order. The mutex protects the slice
// only; the storage file has no write protection.
type Store struct {
	mu       sync.RWMutex
	path     string
	students []model.Student
}

// New loads the roster stored at path. A missing file yields an empty store.
func New(path string) (*Store, error) {
	students, err := codec.Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, students: students}, nil
}

// All returns a snapshot copy of the roster.
func (s *Store) All() []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Student, len(s.students))
	copy(result, s.students)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

// Append adds a student to the end of the roster. Validation is the
// caller's job.
func (s *Store) Append(student model.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, student)
}

// PersistAll overwrites the storage file with the current roster.
func (s *Store) PersistAll() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return codec.Save(s.path, s.students)
}

func (s *Store) Path() string {
	return s.path
}
