package mocks

import (
	"context"

	"github.com/robbyt/go-postfix/platform"
	"github.com/robbyt/go-postfix/platform/history"
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of platform.Evaluator for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Eval is a mock implementation of the Eval method.
func (m *Evaluator) Eval(ctx context.Context, expression string) (platform.EvaluatorResponse, error) {
	args := m.Called(ctx, expression)
	resp, _ := args.Get(0).(platform.EvaluatorResponse)
	return resp, args.Error(1)
}

// History is a mock implementation of the History method.
func (m *Evaluator) History() []history.Record {
	args := m.Called()
	records, _ := args.Get(0).([]history.Record)
	return records
}
