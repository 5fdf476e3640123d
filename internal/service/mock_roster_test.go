package service_test

import (
	"github.com/stretchr/testify/mock"

	"roster/internal/model"
)

type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) All() []model.Student {
	args := m.Called()
	return args.Get(0).([]model.Student)
}

func (m *MockRoster) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockRoster) Append(s model.Student) {
	m.Called(s)
}

func (m *MockRoster) PersistAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRoster) Path() string {
	args := m.Called()
	return args.String(0)
}
