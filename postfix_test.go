package postfix_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robbyt/go-postfix"
	"github.com/robbyt/go-postfix/engine/evaluator"
	"github.com/robbyt/go-postfix/engine/options"
	"github.com/robbyt/go-postfix/platform/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() options.Option {
	return options.WithLogHandler(slog.NewTextHandler(io.Discard, nil))
}

func TestEvalString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		want       int32
		target     error
	}{
		{name: "addition", expression: "3 4 +", want: 7},
		{name: "exponent", expression: "2 3 ^", want: 8},
		{name: "division by zero", expression: "5 0 /", target: evaluator.ErrDivisionByZero},
		{name: "extra operands", expression: "2 3", target: evaluator.ErrExtraOrMissingOperands},
		{name: "missing operand", expression: "3 +", target: evaluator.ErrMissingOperand},
		{name: "invalid token", expression: "4 abc +", target: evaluator.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := postfix.EvalString(context.Background(), tt.expression, quiet())
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
				require.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Value())
			assert.Equal(t, tt.expression, resp.GetExpression())
		})
	}

	_, err := postfix.EvalString(context.Background(), "1", options.WithPowMode(options.PowMode(3)))
	require.ErrorIs(t, err, options.ErrUnknownPowMode)
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	e, err := postfix.NewEvaluator(quiet(), options.WithExactPow())
	require.NoError(t, err)

	v, err := e.Evaluate("2 31 ^")
	require.NoError(t, err)
	require.Equal(t, int32(-2147483648), v)
	require.Len(t, e.History(), 1)
}

func TestEvalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "expressions.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 4 +\n5 0 /\n2 3 ^\n"), 0o600))

	summary, err := postfix.EvalFile(context.Background(), path, quiet())
	require.NoError(t, err)
	require.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, "file://"+filepath.ToSlash(path), summary.Source)

	_, err = postfix.EvalFile(context.Background(), filepath.Join(dir, "missing.txt"), quiet())
	require.ErrorIs(t, err, loader.ErrSourceNotAvailable)
}

func TestEvalReader(t *testing.T) {
	t.Parallel()

	summary, err := postfix.EvalReader(
		context.Background(),
		strings.NewReader("6 2 -\n6 2 /\n4 abc +"),
		"stdin",
		quiet(),
	)
	require.NoError(t, err)
	require.Len(t, summary.Results, 3)
	assert.Equal(t, int32(4), summary.Results[0].Value)
	assert.Equal(t, int32(3), summary.Results[1].Value)
	assert.ErrorIs(t, summary.Results[2].Err, evaluator.ErrInvalidToken)
	assert.True(t, strings.HasPrefix(summary.Source, "reader://stdin/"))

	_, err = postfix.EvalReader(context.Background(), strings.NewReader(""), "stdin", quiet())
	require.ErrorIs(t, err, loader.ErrSourceNotAvailable)
}
