package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glizzus/cron-expand/internal/cronfield"
)

// ExpressionTokens is the minimum number of whitespace-separated tokens in an
// expression: five time fields and at least one command token.
const ExpressionTokens = 6

var ErrMalformedExpression = errors.New("malformed cron expression")

// MalformedExpressionError is returned when an expression has too few tokens.
type MalformedExpressionError struct {
	Expected int
	Actual   int
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("not enough fields in cron expression. Expected %d, provided: %d", e.Expected, e.Actual)
}

func (e *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

var _ error = (*MalformedExpressionError)(nil)

// ParsedSchedule holds the expanded time fields and the command of an expression.
type ParsedSchedule struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
	Command    string
}

// Fields returns the six outputs in expression order.
func (p ParsedSchedule) Fields() []string {
	return []string{p.Minute, p.Hour, p.DayOfMonth, p.Month, p.DayOfWeek, p.Command}
}

// Split separates a raw expression into its five field tokens and the command.
// Runs of whitespace collapse to a single space, including inside the command.
func Split(raw string) ([5]string, string, error) {
	var fields [5]string
	tokens := strings.Fields(raw)
	if len(tokens) < ExpressionTokens {
		return fields, "", &MalformedExpressionError{Expected: ExpressionTokens, Actual: len(tokens)}
	}
	copy(fields[:], tokens[:len(fields)])
	return fields, strings.Join(tokens[len(fields):], " "), nil
}

// Parse splits expression and expands each of its time fields.
// A failure in any field fails the whole expression.
func Parse(expression string) (ParsedSchedule, error) {
	tokens, command, err := Split(expression)
	if err != nil {
		return ParsedSchedule{}, err
	}

	var expanded [5]string
	for i, field := range cronfield.Fields {
		values, err := cronfield.ExpandField(tokens[i], field)
		if err != nil {
			return ParsedSchedule{}, err
		}
		expanded[i] = values.String()
	}

	return ParsedSchedule{
		Minute:     expanded[0],
		Hour:       expanded[1],
		DayOfMonth: expanded[2],
		Month:      expanded[3],
		DayOfWeek:  expanded[4],
		Command:    command,
	}, nil
}

// ValidateCron reports whether expression parses.
func ValidateCron(expression string) error {
	if _, err := Parse(expression); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}
