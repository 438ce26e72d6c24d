package service

import (
	"languagebot/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// IssueSessionToken provides a mock function for service.TokenService.IssueSessionToken.
func (_m *MockTokenService) IssueSessionToken(user *entity.User) (string, *entity.Session, error) {
	ret := _m.Called(user)

	if rf, ok := ret.Get(0).(func(*entity.User) (string, *entity.Session, error)); ok {
		return rf(user)
	}

	r0, _ := ret.Get(0).(string)
	r1, _ := ret.Get(1).(*entity.Session)

	return r0, r1, ret.Error(2)
}

// MockTokenService_IssueSessionToken_Call wraps *mock.Call with typed Run and Return helpers for IssueSessionToken.
type MockTokenService_IssueSessionToken_Call struct {
	*mock.Call
}

// IssueSessionToken is a helper method to define mock.On call.
func (_e *MockTokenService_Expecter) IssueSessionToken(user any) *MockTokenService_IssueSessionToken_Call {
	return &MockTokenService_IssueSessionToken_Call{Call: _e.mock.On("IssueSessionToken", user)}
}

func (_c *MockTokenService_IssueSessionToken_Call) Run(run func(user *entity.User)) *MockTokenService_IssueSessionToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.User))
	})

	return _c
}

func (_c *MockTokenService_IssueSessionToken_Call) Return(_a0 string, _a1 *entity.Session, _a2 error) *MockTokenService_IssueSessionToken_Call {
	_c.Call.Return(_a0, _a1, _a2)

	return _c
}

func (_c *MockTokenService_IssueSessionToken_Call) RunAndReturn(run func(*entity.User) (string, *entity.Session, error)) *MockTokenService_IssueSessionToken_Call {
	_c.Call.Return(run)

	return _c
}

// ParseSessionToken provides a mock function for service.TokenService.ParseSessionToken.
func (_m *MockTokenService) ParseSessionToken(token string) (*entity.Session, error) {
	ret := _m.Called(token)

	if rf, ok := ret.Get(0).(func(string) (*entity.Session, error)); ok {
		return rf(token)
	}

	r0, _ := ret.Get(0).(*entity.Session)

	return r0, ret.Error(1)
}

// MockTokenService_ParseSessionToken_Call wraps *mock.Call with typed Run and Return helpers for ParseSessionToken.
type MockTokenService_ParseSessionToken_Call struct {
	*mock.Call
}

// ParseSessionToken is a helper method to define mock.On call.
func (_e *MockTokenService_Expecter) ParseSessionToken(token any) *MockTokenService_ParseSessionToken_Call {
	return &MockTokenService_ParseSessionToken_Call{Call: _e.mock.On("ParseSessionToken", token)}
}

func (_c *MockTokenService_ParseSessionToken_Call) Run(run func(token string)) *MockTokenService_ParseSessionToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_ParseSessionToken_Call) Return(_a0 *entity.Session, _a1 error) *MockTokenService_ParseSessionToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_ParseSessionToken_Call) RunAndReturn(run func(string) (*entity.Session, error)) *MockTokenService_ParseSessionToken_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a mock and registers expectation checks on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
