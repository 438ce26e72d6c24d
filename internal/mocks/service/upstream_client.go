package service

import (
	"context"

	"languagebot/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockUpstreamClient is a mock implementation of service.UpstreamClient.
type MockUpstreamClient struct {
	mock.Mock
}

type MockUpstreamClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUpstreamClient) EXPECT() *MockUpstreamClient_Expecter {
	return &MockUpstreamClient_Expecter{mock: &_m.Mock}
}

// Do provides a mock function for service.UpstreamClient.Do.
func (_m *MockUpstreamClient) Do(ctx context.Context, req *service.UpstreamRequest) (*service.UpstreamResponse, error) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, *service.UpstreamRequest) (*service.UpstreamResponse, error)); ok {
		return rf(ctx, req)
	}

	r0, _ := ret.Get(0).(*service.UpstreamResponse)

	return r0, ret.Error(1)
}

// MockUpstreamClient_Do_Call wraps *mock.Call with typed Run and Return helpers for Do.
type MockUpstreamClient_Do_Call struct {
	*mock.Call
}

// Do is a helper method to define mock.On call.
func (_e *MockUpstreamClient_Expecter) Do(ctx any, req any) *MockUpstreamClient_Do_Call {
	return &MockUpstreamClient_Do_Call{Call: _e.mock.On("Do", ctx, req)}
}

func (_c *MockUpstreamClient_Do_Call) Run(run func(ctx context.Context, req *service.UpstreamRequest)) *MockUpstreamClient_Do_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.UpstreamRequest))
	})

	return _c
}

func (_c *MockUpstreamClient_Do_Call) Return(_a0 *service.UpstreamResponse, _a1 error) *MockUpstreamClient_Do_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUpstreamClient_Do_Call) RunAndReturn(run func(context.Context, *service.UpstreamRequest) (*service.UpstreamResponse, error)) *MockUpstreamClient_Do_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUpstreamClient creates a mock and registers expectation checks on cleanup.
func NewMockUpstreamClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUpstreamClient {
	m := &MockUpstreamClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
