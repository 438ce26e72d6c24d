package service

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockProxyMetrics is a mock implementation of service.ProxyMetrics.
type MockProxyMetrics struct {
	mock.Mock
}

type MockProxyMetrics_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProxyMetrics) EXPECT() *MockProxyMetrics_Expecter {
	return &MockProxyMetrics_Expecter{mock: &_m.Mock}
}

// ObserveRequest provides a mock function for service.ProxyMetrics.ObserveRequest.
func (_m *MockProxyMetrics) ObserveRequest(outcome string) {
	_m.Called(outcome)
}

// MockProxyMetrics_ObserveRequest_Call wraps *mock.Call with typed Run and Return helpers for ObserveRequest.
type MockProxyMetrics_ObserveRequest_Call struct {
	*mock.Call
}

// ObserveRequest is a helper method to define mock.On call.
func (_e *MockProxyMetrics_Expecter) ObserveRequest(outcome any) *MockProxyMetrics_ObserveRequest_Call {
	return &MockProxyMetrics_ObserveRequest_Call{Call: _e.mock.On("ObserveRequest", outcome)}
}

func (_c *MockProxyMetrics_ObserveRequest_Call) Run(run func(outcome string)) *MockProxyMetrics_ObserveRequest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockProxyMetrics_ObserveRequest_Call) Return() *MockProxyMetrics_ObserveRequest_Call {
	_c.Call.Return()

	return _c
}

// ObserveUpstreamDuration provides a mock function for service.ProxyMetrics.ObserveUpstreamDuration.
func (_m *MockProxyMetrics) ObserveUpstreamDuration(d time.Duration) {
	_m.Called(d)
}

// MockProxyMetrics_ObserveUpstreamDuration_Call wraps *mock.Call with typed Run and Return helpers for ObserveUpstreamDuration.
type MockProxyMetrics_ObserveUpstreamDuration_Call struct {
	*mock.Call
}

// ObserveUpstreamDuration is a helper method to define mock.On call.
func (_e *MockProxyMetrics_Expecter) ObserveUpstreamDuration(d any) *MockProxyMetrics_ObserveUpstreamDuration_Call {
	return &MockProxyMetrics_ObserveUpstreamDuration_Call{Call: _e.mock.On("ObserveUpstreamDuration", d)}
}

func (_c *MockProxyMetrics_ObserveUpstreamDuration_Call) Run(run func(d time.Duration)) *MockProxyMetrics_ObserveUpstreamDuration_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(time.Duration))
	})

	return _c
}

func (_c *MockProxyMetrics_ObserveUpstreamDuration_Call) Return() *MockProxyMetrics_ObserveUpstreamDuration_Call {
	_c.Call.Return()

	return _c
}

// NewMockProxyMetrics creates a mock and registers expectation checks on cleanup.
func NewMockProxyMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProxyMetrics {
	m := &MockProxyMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
