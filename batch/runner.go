// Package batch evaluates a line-oriented source of postfix expressions, one
// expression per line. A failed line is reported and the run moves on.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-postfix/internal/helpers"
	"github.com/robbyt/go-postfix/platform"
	"github.com/robbyt/go-postfix/platform/loader"
)

// LineResult is the outcome of evaluating one line. Err is nil on success.
type LineResult struct {
	Line       int
	Expression string
	Value      int32
	Err        error
}

// OK reports whether the line evaluated successfully.
func (r LineResult) OK() bool {
	return r.Err == nil
}

func (r LineResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Error: %s", r.Err)
	}
	return fmt.Sprintf("Result: %d", r.Value)
}

// Summary collects every line of a run.
type Summary struct {
	Source    string
	Results   []LineResult
	Succeeded int
	Failed    int
}

// Reporter receives each line result as soon as it is available.
type Reporter func(LineResult)

// Option configures a Runner.
type Option func(*Runner)

// WithReporter streams results to fn while the run is in progress.
func WithReporter(fn Reporter) Option {
	return func(r *Runner) {
		r.reporter = fn
	}
}

// WithLogHandler sets the log handler for the runner.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		r.logHandler = handler
	}
}

// Runner feeds each line of a loader to an evaluator.
type Runner struct {
	evaluator platform.Evaluator
	reporter  Reporter

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewRunner creates a Runner around an evaluator.
func NewRunner(evaluator platform.Evaluator, opts ...Option) (*Runner, error) {
	if evaluator == nil {
		return nil, ErrNilEvaluator
	}

	r := &Runner{evaluator: evaluator}
	for _, opt := range opts {
		opt(r)
	}
	r.logHandler, r.logger = helpers.SetupLogger(r.logHandler, "postfix", "Runner")
	return r, nil
}

func (r *Runner) String() string {
	return "batch.Runner"
}

// Run evaluates every line of the loader in order. Expression failures are
// recorded in the summary and never stop the run. The returned error is
// reserved for problems with the source itself and for context cancellation,
// which is checked between lines; in both cases the summary holds the lines
// finished so far.
func (r *Runner) Run(ctx context.Context, ldr loader.Loader) (*Summary, error) {
	if ldr == nil {
		return nil, ErrNilLoader
	}

	summary := &Summary{}
	if u := ldr.GetSourceURL(); u != nil {
		summary.Source = u.String()
	}
	logger := r.logger.WithGroup("Run").With("source", summary.Source)

	reader, err := ldr.GetReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer func() { _ = reader.Close() }()

	buf := bufio.NewReader(reader)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "run cancelled", "line", lineNo, "error", err)
			return summary, err
		}

		line, readErr := buf.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return summary, fmt.Errorf("%w: line %d: %w", ErrSourceRead, lineNo, readErr)
		}
		if readErr != nil && line == "" {
			break
		}

		result := r.evalLine(ctx, lineNo, trimLineEnding(line))
		summary.Results = append(summary.Results, result)
		if result.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
			logger.WarnContext(ctx, "expression failed",
				"line", lineNo, "expression", result.Expression, "error", result.Err)
		}
		if r.reporter != nil {
			r.reporter(result)
		}

		if readErr != nil {
			break
		}
	}

	logger.InfoContext(ctx, "run complete",
		"lines", len(summary.Results), "succeeded", summary.Succeeded, "failed", summary.Failed)
	return summary, nil
}

func (r *Runner) evalLine(ctx context.Context, lineNo int, expression string) LineResult {
	result := LineResult{Line: lineNo, Expression: expression}

	resp, err := r.evaluator.Eval(ctx, expression)
	if err != nil {
		result.Err = err
		return result
	}
	result.Value = resp.Value()
	return result
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
