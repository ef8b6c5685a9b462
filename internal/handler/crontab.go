package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/glizzus/cron-expand/internal/presenters"
	"github.com/glizzus/cron-expand/internal/schedule"
)

// skipCrontabLine reports whether a crontab line carries no schedule: blank
// lines, comments and environment assignments such as SHELL=/bin/sh.
func skipCrontabLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	if strings.HasPrefix(fields[0], "#") {
		return true
	}
	// Cron fields never contain '=', so a first token with one is a variable.
	return strings.Contains(fields[0], "=")
}

// BuildReport parses every schedule line read from r. Lines may be of any
// length. A line that fails to parse is recorded in its entry; only read
// errors are returned.
func BuildReport(r io.Reader, runID string) (presenters.BatchReport, error) {
	report := presenters.BatchReport{RunID: runID, Entries: []presenters.BatchEntry{}}

	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return presenters.BatchReport{}, fmt.Errorf("failed to read crontab: %w", err)
		}
		if line == "" {
			break
		}
		lineNumber++
		if skipCrontabLine(line) {
			continue
		}

		expression := strings.TrimSpace(line)
		entry := presenters.BatchEntry{Line: lineNumber, Expression: expression}
		parsed, err := schedule.Parse(expression)
		if err != nil {
			entry.Error = presenters.DescribeError(err)
		} else {
			fields := presenters.NewScheduleFields(parsed)
			entry.Schedule = &fields
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

func (h *commandHandler) openCrontab(c *cli.Context) (io.ReadCloser, error) {
	switch c.Args().Len() {
	case 0:
		return io.NopCloser(h.deps.Stdin), nil
	case 1:
		path := c.Args().First()
		if path == "-" {
			return io.NopCloser(h.deps.Stdin), nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open crontab: %w", err)
		}
		return f, nil
	default:
		return nil, &UsageError{Message: "crontab takes at most one file argument"}
	}
}

func (h *commandHandler) crontab(c *cli.Context) error {
	format, width, err := h.outputOptions(c)
	if err != nil {
		return err
	}

	runID, err := h.deps.RunIDs.Next()
	if err != nil {
		return fmt.Errorf("failed to generate run ID: %w", err)
	}
	logger := h.logger.With("run_id", runID)

	src, err := h.openCrontab(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close crontab", "error", err)
		}
	}()

	report, err := BuildReport(src, runID)
	if err != nil {
		return err
	}
	for _, e := range report.Entries {
		if e.Schedule == nil {
			logger.Warn("crontab entry failed to parse", "line", e.Line, "expression", e.Expression, "error", e.Error)
		}
	}
	logger.Info("crontab expanded", "entries", len(report.Entries), "failed", report.Failed())

	if err := presenters.RenderBatch(c.App.Writer, format, width, report); err != nil {
		return fmt.Errorf("failed to render crontab report: %w", err)
	}
	if failed := report.Failed(); failed > 0 {
		return &BatchError{Failed: failed, Total: len(report.Entries)}
	}
	return nil
}
