package repository

import (
	"context"

	"languagebot/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a mock implementation of repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

type MockCredentialRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialRepository) EXPECT() *MockCredentialRepository_Expecter {
	return &MockCredentialRepository_Expecter{mock: &_m.Mock}
}

// Upsert provides a mock function for repository.CredentialRepository.Upsert.
func (_m *MockCredentialRepository) Upsert(ctx context.Context, credential *entity.Credential) error {
	ret := _m.Called(ctx, credential)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Credential) error); ok {
		return rf(ctx, credential)
	}

	return ret.Error(0)
}

// MockCredentialRepository_Upsert_Call wraps *mock.Call with typed Run and Return helpers for Upsert.
type MockCredentialRepository_Upsert_Call struct {
	*mock.Call
}

// Upsert is a helper method to define mock.On call.
func (_e *MockCredentialRepository_Expecter) Upsert(ctx any, credential any) *MockCredentialRepository_Upsert_Call {
	return &MockCredentialRepository_Upsert_Call{Call: _e.mock.On("Upsert", ctx, credential)}
}

func (_c *MockCredentialRepository_Upsert_Call) Run(run func(ctx context.Context, credential *entity.Credential)) *MockCredentialRepository_Upsert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Credential))
	})

	return _c
}

func (_c *MockCredentialRepository_Upsert_Call) Return(_a0 error) *MockCredentialRepository_Upsert_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCredentialRepository_Upsert_Call) RunAndReturn(run func(context.Context, *entity.Credential) error) *MockCredentialRepository_Upsert_Call {
	_c.Call.Return(run)

	return _c
}

// FindByUserID provides a mock function for repository.CredentialRepository.FindByUserID.
func (_m *MockCredentialRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*entity.Credential, error)); ok {
		return rf(ctx, userID)
	}

	r0, _ := ret.Get(0).(*entity.Credential)

	return r0, ret.Error(1)
}

// MockCredentialRepository_FindByUserID_Call wraps *mock.Call with typed Run and Return helpers for FindByUserID.
type MockCredentialRepository_FindByUserID_Call struct {
	*mock.Call
}

// FindByUserID is a helper method to define mock.On call.
func (_e *MockCredentialRepository_Expecter) FindByUserID(ctx any, userID any) *MockCredentialRepository_FindByUserID_Call {
	return &MockCredentialRepository_FindByUserID_Call{Call: _e.mock.On("FindByUserID", ctx, userID)}
}

func (_c *MockCredentialRepository_FindByUserID_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialRepository_FindByUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialRepository_FindByUserID_Call) Return(_a0 *entity.Credential, _a1 error) *MockCredentialRepository_FindByUserID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCredentialRepository_FindByUserID_Call) RunAndReturn(run func(context.Context, int64) (*entity.Credential, error)) *MockCredentialRepository_FindByUserID_Call {
	_c.Call.Return(run)

	return _c
}

// ExistsByUserID provides a mock function for repository.CredentialRepository.ExistsByUserID.
func (_m *MockCredentialRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (bool, error)); ok {
		return rf(ctx, userID)
	}

	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// MockCredentialRepository_ExistsByUserID_Call wraps *mock.Call with typed Run and Return helpers for ExistsByUserID.
type MockCredentialRepository_ExistsByUserID_Call struct {
	*mock.Call
}

// ExistsByUserID is a helper method to define mock.On call.
func (_e *MockCredentialRepository_Expecter) ExistsByUserID(ctx any, userID any) *MockCredentialRepository_ExistsByUserID_Call {
	return &MockCredentialRepository_ExistsByUserID_Call{Call: _e.mock.On("ExistsByUserID", ctx, userID)}
}

func (_c *MockCredentialRepository_ExistsByUserID_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialRepository_ExistsByUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialRepository_ExistsByUserID_Call) Return(_a0 bool, _a1 error) *MockCredentialRepository_ExistsByUserID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCredentialRepository_ExistsByUserID_Call) RunAndReturn(run func(context.Context, int64) (bool, error)) *MockCredentialRepository_ExistsByUserID_Call {
	_c.Call.Return(run)

	return _c
}

// DeleteByUserID provides a mock function for repository.CredentialRepository.DeleteByUserID.
func (_m *MockCredentialRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, userID)
	}

	return ret.Error(0)
}

// MockCredentialRepository_DeleteByUserID_Call wraps *mock.Call with typed Run and Return helpers for DeleteByUserID.
type MockCredentialRepository_DeleteByUserID_Call struct {
	*mock.Call
}

// DeleteByUserID is a helper method to define mock.On call.
func (_e *MockCredentialRepository_Expecter) DeleteByUserID(ctx any, userID any) *MockCredentialRepository_DeleteByUserID_Call {
	return &MockCredentialRepository_DeleteByUserID_Call{Call: _e.mock.On("DeleteByUserID", ctx, userID)}
}

func (_c *MockCredentialRepository_DeleteByUserID_Call) Run(run func(ctx context.Context, userID int64)) *MockCredentialRepository_DeleteByUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCredentialRepository_DeleteByUserID_Call) Return(_a0 error) *MockCredentialRepository_DeleteByUserID_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCredentialRepository_DeleteByUserID_Call) RunAndReturn(run func(context.Context, int64) error) *MockCredentialRepository_DeleteByUserID_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockCredentialRepository creates a mock and registers expectation checks on cleanup.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
