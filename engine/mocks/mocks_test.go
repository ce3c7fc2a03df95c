package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/robbyt/go-postfix/platform"
	"github.com/robbyt/go-postfix/platform/history"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorMock(t *testing.T) {
	t.Parallel()

	var _ platform.Evaluator = (*Evaluator)(nil)

	resp := new(EvaluatorResponse)
	resp.On("Value").Return(7)

	m := new(Evaluator)
	m.On("Eval", mock.Anything, "3 4 +").Return(resp, nil)
	m.On("Eval", mock.Anything, "3 +").Return(nil, errors.New("boom"))
	m.On("History").Return([]history.Record{{Expression: "3 4 +", Result: 7}})

	got, err := m.Eval(context.Background(), "3 4 +")
	require.NoError(t, err)
	require.Equal(t, int32(7), got.Value())

	got, err = m.Eval(context.Background(), "3 +")
	require.Error(t, err)
	require.Nil(t, got)

	require.Len(t, m.History(), 1)
	m.AssertExpectations(t)
	resp.AssertExpectations(t)
}

func TestEvaluatorResponseMock(t *testing.T) {
	t.Parallel()

	var _ platform.EvaluatorResponse = (*EvaluatorResponse)(nil)

	resp := new(EvaluatorResponse)
	resp.On("Value").Return(int32(8))
	resp.On("Inspect").Return("8")
	resp.On("Interface").Return(int32(8))
	resp.On("GetExpression").Return("2 3 ^")
	resp.On("GetExecID").Return("abc-1")
	resp.On("GetExecTime").Return("1µs")

	require.Equal(t, int32(8), resp.Value())
	require.Equal(t, "8", resp.Inspect())
	require.Equal(t, int32(8), resp.Interface())
	require.Equal(t, "2 3 ^", resp.GetExpression())
	require.Equal(t, "abc-1", resp.GetExecID())
	require.Equal(t, "1µs", resp.GetExecTime())
}
