package service

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialCipher is a mock implementation of service.CredentialCipher.
type MockCredentialCipher struct {
	mock.Mock
}

type MockCredentialCipher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialCipher) EXPECT() *MockCredentialCipher_Expecter {
	return &MockCredentialCipher_Expecter{mock: &_m.Mock}
}

// Encrypt provides a mock function for service.CredentialCipher.Encrypt.
func (_m *MockCredentialCipher) Encrypt(plaintext string) (string, string, error) {
	ret := _m.Called(plaintext)

	if rf, ok := ret.Get(0).(func(string) (string, string, error)); ok {
		return rf(plaintext)
	}

	r0, _ := ret.Get(0).(string)
	r1, _ := ret.Get(1).(string)

	return r0, r1, ret.Error(2)
}

// MockCredentialCipher_Encrypt_Call wraps *mock.Call with typed Run and Return helpers for Encrypt.
type MockCredentialCipher_Encrypt_Call struct {
	*mock.Call
}

// Encrypt is a helper method to define mock.On call.
func (_e *MockCredentialCipher_Expecter) Encrypt(plaintext any) *MockCredentialCipher_Encrypt_Call {
	return &MockCredentialCipher_Encrypt_Call{Call: _e.mock.On("Encrypt", plaintext)}
}

func (_c *MockCredentialCipher_Encrypt_Call) Run(run func(plaintext string)) *MockCredentialCipher_Encrypt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockCredentialCipher_Encrypt_Call) Return(_a0 string, _a1 string, _a2 error) *MockCredentialCipher_Encrypt_Call {
	_c.Call.Return(_a0, _a1, _a2)

	return _c
}

func (_c *MockCredentialCipher_Encrypt_Call) RunAndReturn(run func(string) (string, string, error)) *MockCredentialCipher_Encrypt_Call {
	_c.Call.Return(run)

	return _c
}

// Decrypt provides a mock function for service.CredentialCipher.Decrypt.
func (_m *MockCredentialCipher) Decrypt(ciphertext string, iv string) (string, error) {
	ret := _m.Called(ciphertext, iv)

	if rf, ok := ret.Get(0).(func(string, string) (string, error)); ok {
		return rf(ciphertext, iv)
	}

	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

// MockCredentialCipher_Decrypt_Call wraps *mock.Call with typed Run and Return helpers for Decrypt.
type MockCredentialCipher_Decrypt_Call struct {
	*mock.Call
}

// Decrypt is a helper method to define mock.On call.
func (_e *MockCredentialCipher_Expecter) Decrypt(ciphertext any, iv any) *MockCredentialCipher_Decrypt_Call {
	return &MockCredentialCipher_Decrypt_Call{Call: _e.mock.On("Decrypt", ciphertext, iv)}
}

func (_c *MockCredentialCipher_Decrypt_Call) Run(run func(ciphertext string, iv string)) *MockCredentialCipher_Decrypt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})

	return _c
}

func (_c *MockCredentialCipher_Decrypt_Call) Return(_a0 string, _a1 error) *MockCredentialCipher_Decrypt_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCredentialCipher_Decrypt_Call) RunAndReturn(run func(string, string) (string, error)) *MockCredentialCipher_Decrypt_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockCredentialCipher creates a mock and registers expectation checks on cleanup.
func NewMockCredentialCipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialCipher {
	m := &MockCredentialCipher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
