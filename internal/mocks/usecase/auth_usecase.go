// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"languagebot/internal/domain/entity"
	"languagebot/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Login provides a mock function for usecase.AuthUsecase.Login.
func (_m *MockAuthUsecase) Login(ctx context.Context, credentialToken string) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, credentialToken)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, credentialToken)
	}

	r0, _ := ret.Get(0).(*usecase.LoginOutput)

	return r0, ret.Error(1)
}

// MockAuthUsecase_Login_Call wraps *mock.Call with typed Run and Return helpers for Login.
type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) Login(ctx any, credentialToken any) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, credentialToken)}
}

func (_c *MockAuthUsecase_Login_Call) Run(run func(ctx context.Context, credentialToken string)) *MockAuthUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_Login_Call) RunAndReturn(run func(context.Context, string) (*usecase.LoginOutput, error)) *MockAuthUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// RequireAuthenticated provides a mock function for usecase.AuthUsecase.RequireAuthenticated.
func (_m *MockAuthUsecase) RequireAuthenticated(ctx context.Context, evidence string) (*entity.Session, error) {
	ret := _m.Called(ctx, evidence)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Session, error)); ok {
		return rf(ctx, evidence)
	}

	r0, _ := ret.Get(0).(*entity.Session)

	return r0, ret.Error(1)
}

// MockAuthUsecase_RequireAuthenticated_Call wraps *mock.Call with typed Run and Return helpers for RequireAuthenticated.
type MockAuthUsecase_RequireAuthenticated_Call struct {
	*mock.Call
}

// RequireAuthenticated is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) RequireAuthenticated(ctx any, evidence any) *MockAuthUsecase_RequireAuthenticated_Call {
	return &MockAuthUsecase_RequireAuthenticated_Call{Call: _e.mock.On("RequireAuthenticated", ctx, evidence)}
}

func (_c *MockAuthUsecase_RequireAuthenticated_Call) Run(run func(ctx context.Context, evidence string)) *MockAuthUsecase_RequireAuthenticated_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_RequireAuthenticated_Call) Return(_a0 *entity.Session, _a1 error) *MockAuthUsecase_RequireAuthenticated_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_RequireAuthenticated_Call) RunAndReturn(run func(context.Context, string) (*entity.Session, error)) *MockAuthUsecase_RequireAuthenticated_Call {
	_c.Call.Return(run)

	return _c
}

// Logout provides a mock function for usecase.AuthUsecase.Logout.
func (_m *MockAuthUsecase) Logout(ctx context.Context, evidence string) error {
	ret := _m.Called(ctx, evidence)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, evidence)
	}

	return ret.Error(0)
}

// MockAuthUsecase_Logout_Call wraps *mock.Call with typed Run and Return helpers for Logout.
type MockAuthUsecase_Logout_Call struct {
	*mock.Call
}

// Logout is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) Logout(ctx any, evidence any) *MockAuthUsecase_Logout_Call {
	return &MockAuthUsecase_Logout_Call{Call: _e.mock.On("Logout", ctx, evidence)}
}

func (_c *MockAuthUsecase_Logout_Call) Run(run func(ctx context.Context, evidence string)) *MockAuthUsecase_Logout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_Logout_Call) Return(_a0 error) *MockAuthUsecase_Logout_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAuthUsecase_Logout_Call) RunAndReturn(run func(context.Context, string) error) *MockAuthUsecase_Logout_Call {
	_c.Call.Return(run)

	return _c
}

// Status provides a mock function for usecase.AuthUsecase.Status.
func (_m *MockAuthUsecase) Status(ctx context.Context, evidence string) (*usecase.StatusOutput, error) {
	ret := _m.Called(ctx, evidence)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*usecase.StatusOutput, error)); ok {
		return rf(ctx, evidence)
	}

	r0, _ := ret.Get(0).(*usecase.StatusOutput)

	return r0, ret.Error(1)
}

// MockAuthUsecase_Status_Call wraps *mock.Call with typed Run and Return helpers for Status.
type MockAuthUsecase_Status_Call struct {
	*mock.Call
}

// Status is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) Status(ctx any, evidence any) *MockAuthUsecase_Status_Call {
	return &MockAuthUsecase_Status_Call{Call: _e.mock.On("Status", ctx, evidence)}
}

func (_c *MockAuthUsecase_Status_Call) Run(run func(ctx context.Context, evidence string)) *MockAuthUsecase_Status_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_Status_Call) Return(_a0 *usecase.StatusOutput, _a1 error) *MockAuthUsecase_Status_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_Status_Call) RunAndReturn(run func(context.Context, string) (*usecase.StatusOutput, error)) *MockAuthUsecase_Status_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAuthUsecase creates a mock and registers expectation checks on cleanup.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
