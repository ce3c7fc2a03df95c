// Package evaluator evaluates postfix (Reverse Polish Notation) integer
// expressions with an operand stack, and records every successful evaluation.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/robbyt/go-postfix/engine/options"
	"github.com/robbyt/go-postfix/internal/helpers"
	"github.com/robbyt/go-postfix/platform"
	"github.com/robbyt/go-postfix/platform/history"
)

// Evaluator evaluates one postfix expression at a time. Each evaluation uses
// its own operand stack, so the only state shared between calls is the
// history log. An Evaluator is safe for concurrent use.
type Evaluator struct {
	powMode options.PowMode
	ops     map[string]binaryOp
	history *history.Log
	seq     atomic.Uint64

	logHandler slog.Handler
	logger     *slog.Logger
}

var _ platform.Evaluator = (*Evaluator)(nil)

// New creates an Evaluator with an empty history.
func New(opts ...options.Option) (*Evaluator, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, err
	}

	handler, logger := helpers.SetupLogger(cfg.GetHandler(), "postfix", "Evaluator")

	return &Evaluator{
		powMode:    cfg.GetPowMode(),
		ops:        operatorTable(cfg.GetPowMode()),
		history:    history.New(),
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (e *Evaluator) String() string {
	return fmt.Sprintf("postfix.Evaluator{PowMode: %s, History: %d}", e.powMode, e.history.Len())
}

// Eval evaluates a whitespace-separated postfix expression. On success the
// expression and its value are appended to the history; on failure the history
// is unchanged and the error matches one of ErrMissingOperand,
// ErrDivisionByZero, ErrInvalidToken or ErrExtraOrMissingOperands.
func (e *Evaluator) Eval(ctx context.Context, expression string) (platform.EvaluatorResponse, error) {
	execID := fmt.Sprintf("%s-%d", helpers.ShortID(expression, 8), e.seq.Add(1))
	logger := e.logger.WithGroup("Eval").With("execID", execID)

	startTime := time.Now()
	value, err := e.exec(expression)
	execTime := time.Since(startTime)

	if err != nil {
		logger.DebugContext(ctx, "evaluation failed", "expression", expression, "error", err)
		return nil, err
	}

	e.history.Append(history.Record{Expression: expression, Result: value})
	logger.DebugContext(ctx, "evaluation complete",
		"expression", expression, "result", value, "execTime", execTime)

	return newResponse(value, expression, execID, execTime), nil
}

// Evaluate is Eval without a context, returning the bare integer result.
func (e *Evaluator) Evaluate(expression string) (int32, error) {
	resp, err := e.Eval(context.Background(), expression)
	if err != nil {
		return 0, err
	}
	return resp.Value(), nil
}

// History returns every successful evaluation in the order it happened.
func (e *Evaluator) History() []history.Record {
	return e.history.Records()
}

// exec makes a single left-to-right pass over the tokens.
func (e *Evaluator) exec(expression string) (int32, error) {
	stack := newOperandStack()

	for _, token := range strings.Fields(expression) {
		if v, ok := parseOperand(token); ok {
			stack.push(v)
			continue
		}

		op, ok := e.ops[token]
		if !ok {
			return 0, &InvalidTokenError{Token: token}
		}

		lhs, rhs, ok := stack.popTwo()
		if !ok {
			return 0, ErrMissingOperand
		}

		v, err := op(lhs, rhs)
		if err != nil {
			return 0, err
		}
		stack.push(v)
	}

	if stack.len() != 1 {
		return 0, ErrExtraOrMissingOperands
	}
	v, _ := stack.popOne()
	return v, nil
}
