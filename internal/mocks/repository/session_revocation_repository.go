package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockSessionRevocationRepository is a mock implementation of repository.SessionRevocationRepository.
type MockSessionRevocationRepository struct {
	mock.Mock
}

type MockSessionRevocationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionRevocationRepository) EXPECT() *MockSessionRevocationRepository_Expecter {
	return &MockSessionRevocationRepository_Expecter{mock: &_m.Mock}
}

// Revoke provides a mock function for repository.SessionRevocationRepository.Revoke.
func (_m *MockSessionRevocationRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, ttl)

	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) error); ok {
		return rf(ctx, sessionID, ttl)
	}

	return ret.Error(0)
}

// MockSessionRevocationRepository_Revoke_Call wraps *mock.Call with typed Run and Return helpers for Revoke.
type MockSessionRevocationRepository_Revoke_Call struct {
	*mock.Call
}

// Revoke is a helper method to define mock.On call.
func (_e *MockSessionRevocationRepository_Expecter) Revoke(ctx any, sessionID any, ttl any) *MockSessionRevocationRepository_Revoke_Call {
	return &MockSessionRevocationRepository_Revoke_Call{Call: _e.mock.On("Revoke", ctx, sessionID, ttl)}
}

func (_c *MockSessionRevocationRepository_Revoke_Call) Run(run func(ctx context.Context, sessionID string, ttl time.Duration)) *MockSessionRevocationRepository_Revoke_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Duration))
	})

	return _c
}

func (_c *MockSessionRevocationRepository_Revoke_Call) Return(_a0 error) *MockSessionRevocationRepository_Revoke_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSessionRevocationRepository_Revoke_Call) RunAndReturn(run func(context.Context, string, time.Duration) error) *MockSessionRevocationRepository_Revoke_Call {
	_c.Call.Return(run)

	return _c
}

// IsRevoked provides a mock function for repository.SessionRevocationRepository.IsRevoked.
func (_m *MockSessionRevocationRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	ret := _m.Called(ctx, sessionID)

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, sessionID)
	}

	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// MockSessionRevocationRepository_IsRevoked_Call wraps *mock.Call with typed Run and Return helpers for IsRevoked.
type MockSessionRevocationRepository_IsRevoked_Call struct {
	*mock.Call
}

// IsRevoked is a helper method to define mock.On call.
func (_e *MockSessionRevocationRepository_Expecter) IsRevoked(ctx any, sessionID any) *MockSessionRevocationRepository_IsRevoked_Call {
	return &MockSessionRevocationRepository_IsRevoked_Call{Call: _e.mock.On("IsRevoked", ctx, sessionID)}
}

func (_c *MockSessionRevocationRepository_IsRevoked_Call) Run(run func(ctx context.Context, sessionID string)) *MockSessionRevocationRepository_IsRevoked_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockSessionRevocationRepository_IsRevoked_Call) Return(_a0 bool, _a1 error) *MockSessionRevocationRepository_IsRevoked_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSessionRevocationRepository_IsRevoked_Call) RunAndReturn(run func(context.Context, string) (bool, error)) *MockSessionRevocationRepository_IsRevoked_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSessionRevocationRepository creates a mock and registers expectation checks on cleanup.
func NewMockSessionRevocationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionRevocationRepository {
	m := &MockSessionRevocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
