// Command postfix evaluates postfix (Reverse Polish Notation) integer
// expressions, either from flags or from an interactive menu.
//
// Usage:
//
//	postfix [-x] [-v] [-e expression]... [-f file|-]
//
// Without -e or -f the interactive menu is started.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/robbyt/go-postfix/engine/evaluator"
	"github.com/robbyt/go-postfix/engine/options"
)

const usage = `usage: postfix [options]

options:
  -e EXPR   evaluate EXPR (may be repeated)
  -f FILE   evaluate every line of FILE, or of stdin when FILE is "-"
  -x        use exact integer exponentiation for ^
  -v        verbose (debug) logging on stderr
  -h        print this help

With no -e or -f, an interactive menu is started.
`

const (
	exitOK          = 0
	exitEvalFailure = 1
	exitUsage       = 2
)

type cliOptions struct {
	expressions []string
	file        string
	exactPow    bool
	verbose     bool
	help        bool
}

func parseArgs(args []string) (*cliOptions, error) {
	opts, optind, err := getopt.Getopts(args, "e:f:xvh")
	if err != nil {
		return nil, err
	}
	if optind < len(args) {
		return nil, fmt.Errorf("unexpected argument: %s", args[optind])
	}

	cli := &cliOptions{}
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			cli.expressions = append(cli.expressions, opt.Value)
		case 'f':
			cli.file = opt.Value
		case 'x':
			cli.exactPow = true
		case 'v':
			cli.verbose = true
		case 'h':
			cli.help = true
		}
	}
	return cli, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "postfix: %s\n\n%s", err, usage)
		return exitUsage
	}
	if cli.help {
		fmt.Fprint(stdout, usage)
		return exitOK
	}

	level := slog.LevelWarn
	if cli.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})

	evalOpts := []options.Option{options.WithLogHandler(handler)}
	if cli.exactPow {
		evalOpts = append(evalOpts, options.WithExactPow())
	}
	eval, err := evaluator.New(evalOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "postfix: %s\n", err)
		return exitUsage
	}

	a, err := newApp(eval, handler, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "postfix: %s\n", err)
		return exitUsage
	}

	if len(cli.expressions) == 0 && cli.file == "" {
		a.interactive(ctx)
		return exitOK
	}

	code := exitOK
	for _, expression := range cli.expressions {
		if !a.evalExpression(ctx, expression) {
			code = exitEvalFailure
		}
	}

	if cli.file != "" {
		failed, err := a.evalFile(ctx, cli.file)
		if err != nil {
			fmt.Fprintf(stderr, "postfix: %s\n", err)
			return exitUsage
		}
		if failed > 0 {
			code = exitEvalFailure
		}
	}
	return code
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
