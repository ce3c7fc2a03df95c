package mocks

import (
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse is a mock implementation of the platform.EvaluatorResponse interface.
type EvaluatorResponse struct {
	mock.Mock
}

// Value returns a mockable integer result.
func (m *EvaluatorResponse) Value() int32 {
	args := m.Called()
	switch v := args.Get(0).(type) {
	case int32:
		return v
	case int:
		return int32(v)
	default:
		panic("unknown value type")
	}
}

// Inspect returns a mockable string.
func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns a mockable value of "any" type, and must be type asserted to the correct type.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

// GetExpression returns a mockable expression.
func (m *EvaluatorResponse) GetExpression() string {
	args := m.Called()
	return args.String(0)
}

// GetExecID returns a mockable execution ID.
func (m *EvaluatorResponse) GetExecID() string {
	args := m.Called()
	return args.String(0)
}

// GetExecTime returns a mockable execution time.
func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}
