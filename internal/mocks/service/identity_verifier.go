// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"languagebot/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockIdentityVerifier is a mock implementation of service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

type MockIdentityVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityVerifier) EXPECT() *MockIdentityVerifier_Expecter {
	return &MockIdentityVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function for service.IdentityVerifier.Verify.
func (_m *MockIdentityVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	ret := _m.Called(ctx, token)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.Identity, error)); ok {
		return rf(ctx, token)
	}

	r0, _ := ret.Get(0).(*service.Identity)

	return r0, ret.Error(1)
}

// MockIdentityVerifier_Verify_Call wraps *mock.Call with typed Run and Return helpers for Verify.
type MockIdentityVerifier_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call.
func (_e *MockIdentityVerifier_Expecter) Verify(ctx any, token any) *MockIdentityVerifier_Verify_Call {
	return &MockIdentityVerifier_Verify_Call{Call: _e.mock.On("Verify", ctx, token)}
}

func (_c *MockIdentityVerifier_Verify_Call) Run(run func(ctx context.Context, token string)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) Return(_a0 *service.Identity, _a1 error) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) RunAndReturn(run func(context.Context, string) (*service.Identity, error)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockIdentityVerifier creates a mock and registers expectation checks on cleanup.
func NewMockIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
