package service

import (
	"context"

	"languagebot/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishAuditEvent provides a mock function for service.EventPublisher.PublishAuditEvent.
func (_m *MockEventPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	ret := _m.Called(ctx, event)

	if rf, ok := ret.Get(0).(func(context.Context, *service.AuditEvent) error); ok {
		return rf(ctx, event)
	}

	return ret.Error(0)
}

// MockEventPublisher_PublishAuditEvent_Call wraps *mock.Call with typed Run and Return helpers for PublishAuditEvent.
type MockEventPublisher_PublishAuditEvent_Call struct {
	*mock.Call
}

// PublishAuditEvent is a helper method to define mock.On call.
func (_e *MockEventPublisher_Expecter) PublishAuditEvent(ctx any, event any) *MockEventPublisher_PublishAuditEvent_Call {
	return &MockEventPublisher_PublishAuditEvent_Call{Call: _e.mock.On("PublishAuditEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishAuditEvent_Call) Run(run func(ctx context.Context, event *service.AuditEvent)) *MockEventPublisher_PublishAuditEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.AuditEvent))
	})

	return _c
}

func (_c *MockEventPublisher_PublishAuditEvent_Call) Return(_a0 error) *MockEventPublisher_PublishAuditEvent_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_PublishAuditEvent_Call) RunAndReturn(run func(context.Context, *service.AuditEvent) error) *MockEventPublisher_PublishAuditEvent_Call {
	_c.Call.Return(run)

	return _c
}

// Close provides a mock function for service.EventPublisher.Close.
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() error); ok {
		return rf()
	}

	return ret.Error(0)
}

// MockEventPublisher_Close_Call wraps *mock.Call with typed Run and Return helpers for Close.
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call.
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockEventPublisher creates a mock and registers expectation checks on cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
