package presenters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glizzus/cron-expand/internal/cronfield"
	"github.com/glizzus/cron-expand/internal/schedule"
)

// Format selects how a schedule or report is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat returns the format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// Labels are the row labels of the table output, in expression order.
var Labels = [6]string{"minute", "hour", "day of month", "month", "day of week", "command"}

// ScheduleFields is the serialisable form of a parsed schedule.
type ScheduleFields struct {
	Minute     string `json:"minute" yaml:"minute"`
	Hour       string `json:"hour" yaml:"hour"`
	DayOfMonth string `json:"day_of_month" yaml:"day_of_month"`
	Month      string `json:"month" yaml:"month"`
	DayOfWeek  string `json:"day_of_week" yaml:"day_of_week"`
	Command    string `json:"command" yaml:"command"`
}

// NewScheduleFields copies the expanded fields of p.
func NewScheduleFields(p schedule.ParsedSchedule) ScheduleFields {
	return ScheduleFields(p)
}

func (f ScheduleFields) values() [6]string {
	return [6]string{f.Minute, f.Hour, f.DayOfMonth, f.Month, f.DayOfWeek, f.Command}
}

// ScheduleDocument is a parsed schedule together with the expression it came from.
type ScheduleDocument struct {
	Expression     string `json:"expression" yaml:"expression"`
	ScheduleFields `yaml:",inline"`
}

func NewScheduleDocument(expression string, p schedule.ParsedSchedule) ScheduleDocument {
	return ScheduleDocument{Expression: expression, ScheduleFields: NewScheduleFields(p)}
}

// DescribeError turns a parse failure into the message shown to users,
// naming the field when the failure belongs to one.
func DescribeError(err error) string {
	var fieldErr cronfield.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf("cannot parse %s: %s", fieldErr.FieldName(), fieldErr.Error())
	}
	return err.Error()
}

func writeRows(w io.Writer, width int, f ScheduleFields) error {
	for i, value := range f.values() {
		if _, err := fmt.Fprintf(w, "%-*s %s\n", width, Labels[i], value); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable writes the expression followed by one labelled row per field.
func RenderTable(w io.Writer, width int, doc ScheduleDocument) error {
	if _, err := fmt.Fprintf(w, "Description of pattern: %s\n", doc.Expression); err != nil {
		return err
	}
	return writeRows(w, width, doc.ScheduleFields)
}

// RenderJSON writes v as indented JSON without HTML escaping.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderYAML writes v as YAML indented by two spaces.
func RenderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderSchedule writes doc in the requested format.
func RenderSchedule(w io.Writer, format Format, width int, doc ScheduleDocument) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, doc)
	case FormatYAML:
		return RenderYAML(w, doc)
	default:
		return RenderTable(w, width, doc)
	}
}
