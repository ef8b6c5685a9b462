package presenters

import (
	"fmt"
	"io"
)

// BatchEntry is the outcome of one crontab line. Exactly one of Schedule and
// Error is set.
type BatchEntry struct {
	Line       int             `json:"line" yaml:"line"`
	Expression string          `json:"expression" yaml:"expression"`
	Schedule   *ScheduleFields `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport is the result of expanding one crontab.
type BatchReport struct {
	RunID   string       `json:"run_id" yaml:"run_id"`
	Entries []BatchEntry `json:"entries" yaml:"entries"`
}

// Failed returns the number of entries that did not parse.
func (r BatchReport) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Schedule == nil {
			n++
		}
	}
	return n
}

// RenderBatchTable writes every entry as a block of labelled rows. Failed
// entries get a single error row.
func RenderBatchTable(w io.Writer, width int, report BatchReport) error {
	if _, err := fmt.Fprintf(w, "Run %s: %d entries, %d failed\n", report.RunID, len(report.Entries), report.Failed()); err != nil {
		return err
	}
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(w, "\nline %d: %s\n", e.Line, e.Expression); err != nil {
			return err
		}
		if e.Schedule == nil {
			if _, err := fmt.Fprintf(w, "%-*s %s\n", width, "error", e.Error); err != nil {
				return err
			}
			continue
		}
		if err := writeRows(w, width, *e.Schedule); err != nil {
			return err
		}
	}
	return nil
}

// RenderBatch writes report in the requested format.
func RenderBatch(w io.Writer, format Format, width int, report BatchReport) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, report)
	case FormatYAML:
		return RenderYAML(w, report)
	default:
		return RenderBatchTable(w, width, report)
	}
}
