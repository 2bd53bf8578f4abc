package contract

import (
	"context"

	"github.com/huangsam/samplerate/schema"
	"github.com/stretchr/testify/mock"
)

// MockSeriesLoader is a testify mock for SeriesLoader.
type MockSeriesLoader struct {
	mock.Mock
}

var _ SeriesLoader = &MockSeriesLoader{} // Compile-time check

// LoadColumn implements the SeriesLoader interface.
func (m *MockSeriesLoader) LoadColumn(ctx context.Context, path string, column string) (schema.Column, error) {
	ret := m.Called(ctx, path, column)
	col, _ := ret.Get(0).(schema.Column)
	return col, ret.Error(1)
}
