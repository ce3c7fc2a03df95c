package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/robbyt/go-postfix/batch"
	"github.com/robbyt/go-postfix/engine/evaluator"
	"github.com/robbyt/go-postfix/platform/loader"
)

// app is the console front end. It owns one evaluator for its whole
// lifetime, so the history spans single expressions and batch files alike.
type app struct {
	eval   *evaluator.Evaluator
	runner *batch.Runner
	stdin  io.Reader
	out    io.Writer
	logger *slog.Logger

	result *color.Color
	failed *color.Color
	title  *color.Color
}

func newApp(eval *evaluator.Evaluator, handler slog.Handler, stdin io.Reader, out io.Writer) (*app, error) {
	a := &app{
		eval:   eval,
		stdin:  stdin,
		out:    out,
		logger: slog.New(handler).WithGroup("cli"),
		result: color.New(color.FgGreen),
		failed: color.New(color.FgRed),
		title:  color.New(color.Bold),
	}

	runner, err := batch.NewRunner(eval,
		batch.WithLogHandler(handler),
		batch.WithReporter(a.printLine),
	)
	if err != nil {
		return nil, err
	}
	a.runner = runner
	return a, nil
}

// evalExpression evaluates and prints one expression. It reports whether
// the evaluation succeeded.
func (a *app) evalExpression(ctx context.Context, expression string) bool {
	resp, err := a.eval.Eval(ctx, expression)
	if err != nil {
		a.printError(err)
		return false
	}
	a.result.Fprintf(a.out, "Result: %d\n", resp.Value())
	return true
}

// evalFile evaluates every line of name, or of stdin when name is "-".
// It returns the number of failed lines, or an error when the source could
// not be read at all.
func (a *app) evalFile(ctx context.Context, name string) (int, error) {
	ldr, err := a.openSource(name)
	if err != nil {
		return 0, err
	}

	summary, err := a.runner.Run(ctx, ldr)
	if err != nil {
		return 0, err
	}
	return summary.Failed, nil
}

func (a *app) openSource(name string) (loader.Loader, error) {
	if name == "-" {
		return loader.NewFromIoReader(a.stdin, "stdin")
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("%w: %w", loader.ErrSourceNotAvailable, err)
	}
	return loader.NewFromDisk(abs)
}

func (a *app) printLine(r batch.LineResult) {
	if r.Err != nil {
		a.printError(r.Err)
		return
	}
	a.result.Fprintf(a.out, "Result: %d\n", r.Value)
}

func (a *app) printError(err error) {
	a.failed.Fprintf(a.out, "Error: %s\n", err)
}

func (a *app) printHistory() {
	a.title.Fprintln(a.out, "Calculation History:")
	for _, r := range a.eval.History() {
		fmt.Fprintln(a.out, r.String())
	}
}

const menu = `Postfix Calculator Menu:
1. Evaluate Expression
2. Evaluate Expressions from File
3. Display Calculation History
4. Exit
`

// interactive runs the menu loop until the user exits or stdin ends.
func (a *app) interactive(ctx context.Context) {
	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	prompt := func(text string) (string, bool) {
		fmt.Fprint(a.out, text)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		if ctx.Err() != nil {
			return
		}

		a.title.Fprint(a.out, menu)
		line, ok := prompt("Enter your choice: ")
		if !ok {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1:
			expression, ok := prompt("Enter postfix expression: ")
			if !ok {
				return
			}
			a.evalExpression(ctx, expression)
		case 2:
			name, ok := prompt("Enter filename: ")
			if !ok {
				return
			}
			a.interactiveFile(ctx, strings.TrimSpace(name))
		case 3:
			a.printHistory()
		case 4:
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *app) interactiveFile(ctx context.Context, name string) {
	if name == "-" {
		// stdin is the menu itself
		a.printError(errors.New("reading expressions from stdin is not available in the menu"))
		return
	}

	if _, err := a.evalFile(ctx, name); err != nil {
		a.logger.DebugContext(ctx, "batch source failed", "file", name, "error", err)
		if errors.Is(err, loader.ErrSourceNotAvailable) {
			a.printError(errors.New("file not found"))
			return
		}
		a.printError(err)
	}
}
