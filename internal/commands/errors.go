package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to extraction command failures. Hosts branch on these
// instead of matching message strings.
const (
	codeValidationFailed = "LINKMAP_COMMAND_VALIDATION_FAILED"
	codeRunCanceled      = "LINKMAP_COMMAND_CANCELED"
	codeRunTimedOut      = "LINKMAP_COMMAND_TIMEOUT"
	codeContextFailed    = "LINKMAP_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "LINKMAP_COMMAND_EXECUTION_FAILED"
)

// tag wraps err with a category, message, and text code unless a previous
// layer already produced a rich error.
func tag(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, "command message failed validation", codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return tag(err, goerrors.CategoryCommand, "command run canceled", codeRunCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return tag(err, goerrors.CategoryCommand, "command run exceeded its deadline", codeRunTimedOut)
	default:
		return tag(err, goerrors.CategoryCommand, "command context failed", codeContextFailed)
	}
}

func wrapExecuteError(err error) error {
	return tag(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}
