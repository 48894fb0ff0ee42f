package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitr/internal/logger"
)

// Error kinds produced by the core. Callers match with errors.Is; the CLI
// maps them to user-facing messages and exit codes.
var (
	ErrNotFound           = stderrors.New("not found")
	ErrDuplicateName      = stderrors.New("habit already exists")
	ErrInvalidPeriodicity = stderrors.New("periodicity must be 'daily' or 'weekly'")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
