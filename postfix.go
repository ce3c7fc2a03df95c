// Package postfix evaluates postfix (Reverse Polish Notation) integer
// expressions. It wraps the evaluator, loader and batch packages behind a few
// one-call helpers.
package postfix

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/robbyt/go-postfix/batch"
	"github.com/robbyt/go-postfix/engine/evaluator"
	"github.com/robbyt/go-postfix/engine/options"
	"github.com/robbyt/go-postfix/platform"
	"github.com/robbyt/go-postfix/platform/loader"
)

// NewEvaluator creates an evaluator with an empty history.
func NewEvaluator(opts ...options.Option) (*evaluator.Evaluator, error) {
	return evaluator.New(opts...)
}

// EvalString evaluates a single expression with a new evaluator.
func EvalString(
	ctx context.Context,
	expression string,
	opts ...options.Option,
) (platform.EvaluatorResponse, error) {
	e, err := evaluator.New(opts...)
	if err != nil {
		return nil, err
	}
	return e.Eval(ctx, expression)
}

// EvalFile evaluates every line of a file with a new evaluator. Relative
// paths are resolved against the working directory.
func EvalFile(ctx context.Context, path string, opts ...options.Option) (*batch.Summary, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	l, err := loader.NewFromDisk(abs)
	if err != nil {
		return nil, err
	}
	return evalLoader(ctx, l, opts...)
}

// EvalReader evaluates every line read from r with a new evaluator.
func EvalReader(
	ctx context.Context,
	r io.Reader,
	sourceName string,
	opts ...options.Option,
) (*batch.Summary, error) {
	l, err := loader.NewFromIoReader(r, sourceName)
	if err != nil {
		return nil, err
	}
	return evalLoader(ctx, l, opts...)
}

func evalLoader(ctx context.Context, l loader.Loader, opts ...options.Option) (*batch.Summary, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, err
	}

	e, err := evaluator.New(opts...)
	if err != nil {
		return nil, err
	}

	runner, err := batch.NewRunner(e, batch.WithLogHandler(cfg.GetHandler()))
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, l)
}
