package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/hookcfg/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a user-friendly message for known error codes and returns
// the error unchanged so callers keep their exit status.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No .pre-commit-config.yaml found. Create one in the repository root.\n")
		return err

	case errors.ErrCodeDuplicateHook:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%s' is enabled more than once in repo '%s'\n",
				hookErr.Details["hook"], hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Remove the duplicate entry or give one of them an alias.\n")
		}
		return err

	case errors.ErrCodeRevisionMissing:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Repo '%s' has no pinned revision\n", hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Add a 'rev:' field with a tag or commit hash.\n")
		}
		return err

	case errors.ErrCodeHookNotFound:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%s' is not registered in the configuration\n",
				hookErr.Details["hook"])
			fmt.Fprintf(os.Stderr, "Run 'hookcfg list' to see registered hooks.\n")
		}
		return err

	case errors.ErrCodeGitNotRepo:
		fmt.Fprintf(os.Stderr, "❌ Not inside a git repository.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if hookErr, ok := err.(*errors.HookError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hookErr.ToJSON())
			}
		}
		return err
	}
}
