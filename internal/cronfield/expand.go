package cronfield

import (
	"strconv"
	"strings"

	"github.com/glizzus/cron-expand/internal/util"
)

// ExpandedField is the ascending, duplicate-free set of values a field matches.
type ExpandedField []int

// String renders the values separated by single spaces. An empty field
// renders as the empty string.
func (e ExpandedField) String() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Expand expands token within bounds and renders the result. aliases may be
// nil for fields without symbolic names; fieldName is used in errors.
func Expand(token string, bounds Bounds, aliases AliasTable, fieldName string) (string, error) {
	expanded, err := ExpandField(token, Field{Name: fieldName, Bounds: bounds, Aliases: aliases})
	if err != nil {
		return "", err
	}
	return expanded.String(), nil
}

// ExpandField expands token as a value of f. Every comma-separated component
// is expanded first; the union is then deduplicated, sorted and bounds checked.
// The first out-of-bounds value, in ascending order, fails the whole field.
func ExpandField(token string, f Field) (ExpandedField, error) {
	var values []int
	for _, text := range strings.Split(token, ",") {
		c, err := ParseComponent(text, f)
		if err != nil {
			return nil, err
		}
		values = append(values, c.Values(f.Bounds)...)
	}

	values = util.Unique(values)

	bad, found := util.FindFirst(values, func(v int) bool { return !f.Bounds.Contains(v) })
	if found {
		if bad < f.Bounds.Min {
			return nil, &OutOfBoundsError{Field: f.Name, Value: bad, Bound: BoundMin, Limit: f.Bounds.Min}
		}
		return nil, &OutOfBoundsError{Field: f.Name, Value: bad, Bound: BoundMax, Limit: f.Bounds.Max}
	}

	return ExpandedField(values), nil
}
