package cronfield

import (
	"strconv"
	"strings"
)

// Bounds is the inclusive range of values a field accepts.
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether v lies within the bounds.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Alias maps a symbolic name to the numeric value it stands for.
type Alias struct {
	Name  string
	Value int
}

// AliasTable is an ordered list of aliases. Lookups are case-insensitive and
// match whole operands only, so "mon" resolves but "mon1" does not.
type AliasTable []Alias

// Lookup returns the value for name, if the table has it.
func (t AliasTable) Lookup(name string) (int, bool) {
	for _, a := range t {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return 0, false
}

// Field describes one of the five time fields of a cron expression.
type Field struct {
	Name    string
	Bounds  Bounds
	Aliases AliasTable
}

// MonthAliases maps month names to 1 (January) through 12 (December).
var MonthAliases = AliasTable{
	{"jan", 1}, {"feb", 2}, {"mar", 3}, {"apr", 4},
	{"may", 5}, {"jun", 6}, {"jul", 7}, {"aug", 8},
	{"sep", 9}, {"oct", 10}, {"nov", 11}, {"dec", 12},
}

// DayOfWeekAliases maps weekday names to 1 (Monday) through 7 (Sunday).
// The numeral 0 is also Sunday and is rewritten to 7.
var DayOfWeekAliases = AliasTable{
	{"mon", 1}, {"tue", 2}, {"wed", 3}, {"thu", 4},
	{"fri", 5}, {"sat", 6}, {"sun", 7},
	{"0", 7},
}

// The five time fields with their bounds and aliases.
var (
	Minute     = Field{Name: "minute", Bounds: Bounds{Min: 0, Max: 59}}
	Hour       = Field{Name: "hour", Bounds: Bounds{Min: 0, Max: 23}}
	DayOfMonth = Field{Name: "day of month", Bounds: Bounds{Min: 1, Max: 31}}
	Month      = Field{Name: "month", Bounds: Bounds{Min: 1, Max: 12}, Aliases: MonthAliases}
	DayOfWeek  = Field{Name: "day of week", Bounds: Bounds{Min: 1, Max: 7}, Aliases: DayOfWeekAliases}
)

// Fields lists the time fields in the order they appear in an expression.
var Fields = [5]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// resolve turns a number operand into its value, consulting the field's
// aliases before falling back to an integer literal.
func (f Field) resolve(operand string) (int, error) {
	if v, ok := f.Aliases.Lookup(operand); ok {
		return v, nil
	}
	return f.literal(operand)
}

// literal parses an unsigned decimal integer. Signs, spaces, empty strings
// and values that overflow int are rejected; range checks happen later.
func (f Field) literal(s string) (int, error) {
	if s == "" {
		return 0, &InvalidNumberError{Field: f.Name, Literal: s}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &InvalidNumberError{Field: f.Name, Literal: s}
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidNumberError{Field: f.Name, Literal: s, Err: err}
	}
	return v, nil
}
