package platform

import (
	"context"

	"github.com/robbyt/go-postfix/platform/history"
)

// Evaluator is the interface for a postfix expression evaluator.
type Evaluator interface {
	// Eval evaluates one whitespace-separated postfix expression. A failed
	// evaluation returns a nil response and an error classifying the failure;
	// it never affects later calls.
	Eval(ctx context.Context, expression string) (EvaluatorResponse, error)

	// History returns every successful evaluation since construction, oldest first.
	History() []history.Record
}

// EvaluatorResponse is the result of a successful evaluation.
type EvaluatorResponse interface {
	// Value returns the integer result.
	Value() int32

	// Inspect returns a string representation of the result.
	Inspect() string

	// Interface returns the result as a native Go value.
	Interface() any

	// GetExpression returns the expression text that produced the result.
	GetExpression() string

	// GetExecID returns the ID of the evaluation that produced the result.
	GetExecID() string

	// GetExecTime returns the time it took to evaluate the expression.
	GetExecTime() string
}
