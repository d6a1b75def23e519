// Package mocks holds testify mocks of the project's interfaces.
package mocks

import (
	"context"

	"github.com/Houeta/shelf-watch/internal/models"
	"github.com/stretchr/testify/mock"
)

// Source is a mock of loader.Source.
type Source struct {
	mock.Mock
}

// NewSource creates a Source mock that asserts its expectations on cleanup.
func NewSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *Source {
	m := &Source{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)

	var data []byte
	if v := args.Get(0); v != nil {
		data = v.([]byte) //nolint:forcetypeassert // set by the test
	}

	return data, args.Error(1)
}

// DashboardLoader is a mock of loader.Interface.
type DashboardLoader struct {
	mock.Mock
}

// NewDashboardLoader creates a DashboardLoader mock that asserts its
// expectations on cleanup.
func NewDashboardLoader(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardLoader {
	m := &DashboardLoader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *DashboardLoader) Dashboard(ctx context.Context) (*models.DashboardView, error) {
	args := m.Called(ctx)

	var view *models.DashboardView
	if v := args.Get(0); v != nil {
		view = v.(*models.DashboardView) //nolint:forcetypeassert // set by the test
	}

	return view, args.Error(1)
}
