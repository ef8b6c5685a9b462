// Package cronfield expands a single cron time field into the concrete values it matches.
//
// A field token such as "*/15", "1,15", "0-23/2" or "mon-fri" is parsed into
// components (wildcard, single value, range, stepped), expanded, deduplicated,
// sorted and checked against the field's bounds. Expansion is pure: nothing in
// this package keeps state between calls.
package cronfield
