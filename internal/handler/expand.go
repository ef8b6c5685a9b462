package handler

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/glizzus/cron-expand/internal/presenters"
	"github.com/glizzus/cron-expand/internal/schedule"
)

const usageHint = `please provide cron expression in quotes:
   "*/15 0 1,15 * 1-5 /usr/bin/find"`

// ExpressionFromArgs rebuilds an expression from command line arguments. It
// accepts either the whole expression as a single quoted argument or the
// unquoted tokens as six or more separate arguments.
func ExpressionFromArgs(args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case len(args) >= schedule.ExpressionTokens:
		return strings.Join(args, " "), nil
	default:
		return "", &UsageError{Message: usageHint}
	}
}

func (h *commandHandler) parseArgs(c *cli.Context) (string, schedule.ParsedSchedule, error) {
	expression, err := ExpressionFromArgs(c.Args().Slice())
	if err != nil {
		return "", schedule.ParsedSchedule{}, err
	}

	h.logger.Debug("parsing expression", "expression", expression)
	parsed, err := schedule.Parse(expression)
	if err != nil {
		h.logger.Debug("failed to parse expression", "expression", expression, "error", err)
		return "", schedule.ParsedSchedule{}, &ParseError{Expression: expression, Err: err}
	}
	return expression, parsed, nil
}

func (h *commandHandler) expand(c *cli.Context) error {
	format, width, err := h.outputOptions(c)
	if err != nil {
		return err
	}

	expression, parsed, err := h.parseArgs(c)
	if err != nil {
		return err
	}

	doc := presenters.NewScheduleDocument(expression, parsed)
	if err := presenters.RenderSchedule(c.App.Writer, format, width, doc); err != nil {
		return fmt.Errorf("failed to render schedule: %w", err)
	}
	return nil
}

func (h *commandHandler) validate(c *cli.Context) error {
	expression, err := ExpressionFromArgs(c.Args().Slice())
	if err != nil {
		return err
	}
	if err := schedule.ValidateCron(expression); err != nil {
		h.logger.Info("expression is not valid", "expression", expression, "error", err)
		return &ParseError{Expression: expression, Err: err}
	}
	if _, err := fmt.Fprintf(c.App.Writer, "valid: %s\n", expression); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
