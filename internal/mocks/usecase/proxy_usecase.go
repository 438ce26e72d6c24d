package usecase

import (
	"context"

	"languagebot/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockProxyUsecase is a mock implementation of usecase.ProxyUsecase.
type MockProxyUsecase struct {
	mock.Mock
}

type MockProxyUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProxyUsecase) EXPECT() *MockProxyUsecase_Expecter {
	return &MockProxyUsecase_Expecter{mock: &_m.Mock}
}

// Forward provides a mock function for usecase.ProxyUsecase.Forward.
func (_m *MockProxyUsecase) Forward(ctx context.Context, input *usecase.ForwardInput) (*usecase.ForwardOutput, error) {
	ret := _m.Called(ctx, input)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ForwardInput) (*usecase.ForwardOutput, error)); ok {
		return rf(ctx, input)
	}

	r0, _ := ret.Get(0).(*usecase.ForwardOutput)

	return r0, ret.Error(1)
}

// MockProxyUsecase_Forward_Call wraps *mock.Call with typed Run and Return helpers for Forward.
type MockProxyUsecase_Forward_Call struct {
	*mock.Call
}

// Forward is a helper method to define mock.On call.
func (_e *MockProxyUsecase_Expecter) Forward(ctx any, input any) *MockProxyUsecase_Forward_Call {
	return &MockProxyUsecase_Forward_Call{Call: _e.mock.On("Forward", ctx, input)}
}

func (_c *MockProxyUsecase_Forward_Call) Run(run func(ctx context.Context, input *usecase.ForwardInput)) *MockProxyUsecase_Forward_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.ForwardInput))
	})

	return _c
}

func (_c *MockProxyUsecase_Forward_Call) Return(_a0 *usecase.ForwardOutput, _a1 error) *MockProxyUsecase_Forward_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProxyUsecase_Forward_Call) RunAndReturn(run func(context.Context, *usecase.ForwardInput) (*usecase.ForwardOutput, error)) *MockProxyUsecase_Forward_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockProxyUsecase creates a mock and registers expectation checks on cleanup.
func NewMockProxyUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProxyUsecase {
	m := &MockProxyUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
