// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"languagebot/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function for repository.UserRepository.FindByID.
func (_m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*entity.User, error)); ok {
		return rf(ctx, id)
	}

	r0, _ := ret.Get(0).(*entity.User)

	return r0, ret.Error(1)
}

// MockUserRepository_FindByID_Call wraps *mock.Call with typed Run and Return helpers for FindByID.
type MockUserRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call.
func (_e *MockUserRepository_Expecter) FindByID(ctx any, id any) *MockUserRepository_FindByID_Call {
	return &MockUserRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockUserRepository_FindByID_Call) Run(run func(ctx context.Context, id int64)) *MockUserRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockUserRepository_FindByID_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUserRepository_FindByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.User, error)) *MockUserRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// UpsertBySubject provides a mock function for repository.UserRepository.UpsertBySubject.
func (_m *MockUserRepository) UpsertBySubject(ctx context.Context, subject string, email string, name string) (*entity.User, error) {
	ret := _m.Called(ctx, subject, email, name)

	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (*entity.User, error)); ok {
		return rf(ctx, subject, email, name)
	}

	r0, _ := ret.Get(0).(*entity.User)

	return r0, ret.Error(1)
}

// MockUserRepository_UpsertBySubject_Call wraps *mock.Call with typed Run and Return helpers for UpsertBySubject.
type MockUserRepository_UpsertBySubject_Call struct {
	*mock.Call
}

// UpsertBySubject is a helper method to define mock.On call.
func (_e *MockUserRepository_Expecter) UpsertBySubject(ctx any, subject any, email any, name any) *MockUserRepository_UpsertBySubject_Call {
	return &MockUserRepository_UpsertBySubject_Call{Call: _e.mock.On("UpsertBySubject", ctx, subject, email, name)}
}

func (_c *MockUserRepository_UpsertBySubject_Call) Run(run func(ctx context.Context, subject string, email string, name string)) *MockUserRepository_UpsertBySubject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})

	return _c
}

func (_c *MockUserRepository_UpsertBySubject_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_UpsertBySubject_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUserRepository_UpsertBySubject_Call) RunAndReturn(run func(context.Context, string, string, string) (*entity.User, error)) *MockUserRepository_UpsertBySubject_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUserRepository creates a mock and registers expectation checks on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
