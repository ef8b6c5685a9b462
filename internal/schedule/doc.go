// Package schedule provides utilities for cron expression handling.
//
// Split breaks a raw expression into its five time fields and the command.
// Parse expands every time field into the concrete values it matches.
package schedule
