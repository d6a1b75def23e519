package mocks

import (
	"github.com/stretchr/testify/mock"
	"gopkg.in/telebot.v4"
)

// API is a mock of bot.API.
type API struct {
	mock.Mock
}

// NewAPI creates an API mock that asserts its expectations on cleanup.
func NewAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *API {
	m := &API{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *API) Handle(endpoint interface{}, h telebot.HandlerFunc, mw ...telebot.MiddlewareFunc) {
	args := []interface{}{endpoint, h}
	for _, fn := range mw {
		args = append(args, fn)
	}
	m.Called(args...)
}

func (m *API) Start() {
	m.Called()
}

func (m *API) Stop() {
	m.Called()
}
