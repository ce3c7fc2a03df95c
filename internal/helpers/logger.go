package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a logger for one component of the calculator.
// If the provided handler is nil, a default text handler grouped under
// groupName is created and a warning is logged.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - groupName: The top-level group for the default handler (e.g., "postfix")
//   - componentName: Optional group for the component (e.g., "Evaluator", "Runner")
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(
	handler slog.Handler,
	groupName string,
	componentName string,
) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(groupName)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if componentName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(componentName))
}
