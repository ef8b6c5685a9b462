package handler

import (
	"errors"
	"fmt"

	"github.com/glizzus/cron-expand/internal/presenters"
)

// UsageError is an error type that is used to represent
// a command invoked with the wrong arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

var _ error = (*UsageError)(nil)

// ParseError is an error that indicates
// that an expression given on the command line did not parse.
type ParseError struct {
	Expression string
	Err        error
}

func (e *ParseError) Error() string {
	return presenters.DescribeError(e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var _ error = (*ParseError)(nil)

// BatchError reports a crontab in which some lines did not parse.
type BatchError struct {
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d crontab entries failed to parse", e.Failed, e.Total)
}

var _ error = (*BatchError)(nil)

// ExitCode maps an error returned by the app to a process exit status:
// 0 for success, 2 for usage errors and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}
