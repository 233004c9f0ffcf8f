package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// SessionTokenSource is a mock implementation of service.SessionTokenSource.
type SessionTokenSource struct {
	mock.Mock
}

func (m *SessionTokenSource) Generate() (string, string, error) {
	args := m.Called()

	return args.String(0), args.String(1), args.Error(2)
}

func (m *SessionTokenSource) Hash(raw string) string {
	args := m.Called(raw)

	return args.String(0)
}
