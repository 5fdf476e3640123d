package service

import (
	"errors"
	"fmt"
	"strings"

	"roster/internal/model"
	"roster/internal/stats"
	"roster/internal/store"
)

var (
	ErrInvalidStudent = errors.New("invalid student")
	ErrPersist        = errors.New("persist roster")
)

type StudentService struct {
	roster store.Roster
}

func NewStudentService(roster store.Roster) *StudentService {
	return &StudentService{roster: roster}
}

func (s *StudentService) List() []model.Student {
	return s.roster.All()
}

// Add appends a student and persists the whole roster. When persisting fails
// the student stays in memory and the error wraps ErrPersist.
func (s *StudentService) Add(name string, age int, grade float64) (model.Student, error) {
	student := model.Student{Name: strings.TrimSpace(name), Age: age, Grade: grade}
	if student.Name == "" {
		return model.Student{}, fmt.Errorf("%w: name is required", ErrInvalidStudent)
	}

	s.roster.Append(student)
	if err := s.roster.PersistAll(); err != nil {
		return student, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return student, nil
}

func (s *StudentService) Failing(threshold float64) []model.Student {
	return stats.FailingStudents(s.roster.All(), threshold)
}

func (s *StudentService) Summary() stats.Summary {
	return stats.Summarize(s.roster.All())
}

// Save persists the current roster and returns the storage location.
func (s *StudentService) Save() (string, error) {
	if err := s.roster.PersistAll(); err != nil {
		return s.roster.Path(), fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return s.roster.Path(), nil
}

func (s *StudentService) StoragePath() string {
	return s.roster.Path()
}
