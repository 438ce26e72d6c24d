package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCredentialVault is a mock implementation of usecase.CredentialVault.
type MockCredentialVault struct {
	mock.Mock
}

type MockCredentialVault_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialVault) EXPECT() *MockCredentialVault_Expecter {
	return &MockCredentialVault_Expecter{mock: &_m.Mock}
}

// Save provides a mock function for usecase.CredentialVault.Save.
func (_m *MockCredentialVault) Save(ctx context.Context, userID int64, apiKey string) error {
	ret := _m.Called(ctx, userID, apiKey)

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		return rf(ctx, userID, apiKey)
	}

	return ret.Error(0)
}

// MockCredentialVault_Save_Call wraps *mock.Call with typed Run and Return helpers for Save.
type MockCredentialVault_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call.
func (_e *MockCredentialVault_Expecter) Save(ctx any, userID any, apiKey any) *MockCredentialVault_Save_Call {
	return &MockCredentialVault_Save_Call{Call: _e.mock.On("Save", ctx, userID, apiKey)}
}

func (_c *MockCredentialVault_Save_Call) Run(run func(ctx context.Context, userID int64, apiKey string)) *MockCredentialVault_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})

	return _c
}

func (_c *MockCredentialVault_Save_Call) Return(_a0 error) *MockCredentialVault_Save_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCredentialVault_Save_Call) RunAndReturn(run func(context.Context, int64, string) error) *MockCredentialVault_Save_Call {
	_c.Call.Return(run)

	return _c
}

// Get provides a mock function for usecase.CredentialVault.Get.
func (_m *MockCredentialVault) Get(ctx context.Context, userID int64) (string, bool, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (string, bool, error)); ok {
		return rf(ctx, userID)
	}

	r0, _ := ret.Get(0).(string)
	r1, _ := ret.Get(1).(bool)

	return r0, r1, ret.Error(2)
}

// MockCredentialVault_Get_Call wraps *mock.Call with typed Run and Return helpers for Get.
type MockCredentialVault_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call.
func (_e *MockCredentialVault_Expecter) Get(ctx any, userID any) *MockCredentialVault_Get_Call {
	return &MockCredentialVault_Get_Call{Call: _e.mock.On("Get", ctx, userID)}
}

func (_c *MockCredentialVault_Get_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialVault_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialVault_Get_Call) Return(_a0 string, _a1 bool, _a2 error) *MockCredentialVault_Get_Call {
	_c.Call.Return(_a0, _a1, _a2)

	return _c
}

func (_c *MockCredentialVault_Get_Call) RunAndReturn(run func(context.Context, int64) (string, bool, error)) *MockCredentialVault_Get_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function for usecase.CredentialVault.Delete.
func (_m *MockCredentialVault) Delete(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, userID)
	}

	return ret.Error(0)
}

// MockCredentialVault_Delete_Call wraps *mock.Call with typed Run and Return helpers for Delete.
type MockCredentialVault_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call.
func (_e *MockCredentialVault_Expecter) Delete(ctx any, userID any) *MockCredentialVault_Delete_Call {
	return &MockCredentialVault_Delete_Call{Call: _e.mock.On("Delete", ctx, userID)}
}

func (_c *MockCredentialVault_Delete_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialVault_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialVault_Delete_Call) Return(_a0 error) *MockCredentialVault_Delete_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCredentialVault_Delete_Call) RunAndReturn(run func(context.Context, int64) error) *MockCredentialVault_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// HasKey provides a mock function for usecase.CredentialVault.HasKey.
func (_m *MockCredentialVault) HasKey(ctx context.Context, userID int64) (bool, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (bool, error)); ok {
		return rf(ctx, userID)
	}

	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// MockCredentialVault_HasKey_Call wraps *mock.Call with typed Run and Return helpers for HasKey.
type MockCredentialVault_HasKey_Call struct {
	*mock.Call
}

// HasKey is a helper method to define mock.On call.
func (_e *MockCredentialVault_Expecter) HasKey(ctx any, userID any) *MockCredentialVault_HasKey_Call {
	return &MockCredentialVault_HasKey_Call{Call: _e.mock.On("HasKey", ctx, userID)}
}

func (_c *MockCredentialVault_HasKey_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialVault_HasKey_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialVault_HasKey_Call) Return(_a0 bool, _a1 error) *MockCredentialVault_HasKey_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCredentialVault_HasKey_Call) RunAndReturn(run func(context.Context, int64) (bool, error)) *MockCredentialVault_HasKey_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockCredentialVault creates a mock and registers expectation checks on cleanup.
func NewMockCredentialVault(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialVault {
	m := &MockCredentialVault{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
