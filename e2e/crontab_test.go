package e2e_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glizzus/cron-expand/e2e"
	"github.com/glizzus/cron-expand/internal/handler"
	"github.com/glizzus/cron-expand/internal/presenters"
)

const goodCrontab = `# run five minutes after midnight, every day
5 0 * * *       $HOME/bin/daily.job >> $HOME/tmp/out 2>&1
# run at 2:15pm on the first of every month
15 14 1 * *     $HOME/bin/monthly
`

func TestCrontabFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crontab")
	if err := os.WriteFile(path, []byte(goodCrontab), 0o600); err != nil {
		t.Fatalf("failed to write crontab: %v", err)
	}

	result := e2e.Run(t, "", "--format", "json", "crontab", path)
	if result.Err != nil {
		t.Fatalf("run returned error: %v", result.Err)
	}

	var report presenters.BatchReport
	if err := json.Unmarshal([]byte(result.Stdout), &report); err != nil {
		t.Fatalf("stdout is not json: %v\n%s", err, result.Stdout)
	}

	everyDay := "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 25 26 27 28 29 30 31"
	everyMonth := "1 2 3 4 5 6 7 8 9 10 11 12"
	want := presenters.BatchReport{
		RunID: "run-1",
		Entries: []presenters.BatchEntry{
			{
				Line:       2,
				Expression: "5 0 * * *       $HOME/bin/daily.job >> $HOME/tmp/out 2>&1",
				Schedule: &presenters.ScheduleFields{
					Minute: "5", Hour: "0", DayOfMonth: everyDay, Month: everyMonth,
					DayOfWeek: "1 2 3 4 5 6 7", Command: "$HOME/bin/daily.job >> $HOME/tmp/out 2>&1",
				},
			},
			{
				Line:       4,
				Expression: "15 14 1 * *     $HOME/bin/monthly",
				Schedule: &presenters.ScheduleFields{
					Minute: "15", Hour: "14", DayOfMonth: "1", Month: everyMonth,
					DayOfWeek: "1 2 3 4 5 6 7", Command: "$HOME/bin/monthly",
				},
			},
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestCrontabFromStdinWithFailures(t *testing.T) {
	input := "0 22 * * 1-5 mail joe\n0 0 0 * * broken\n"

	for _, args := range [][]string{{"crontab"}, {"crontab", "-"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			result := e2e.Run(t, input, args...)

			var batchErr *handler.BatchError
			if !errors.As(result.Err, &batchErr) {
				t.Fatalf("expected a batch error, got %v", result.Err)
			}
			if diff := cmp.Diff(&handler.BatchError{Failed: 1, Total: 2}, batchErr); diff != "" {
				t.Errorf("batch error mismatch (-want +got):\n%s", diff)
			}
			if result.Code != 1 {
				t.Errorf("expected exit code 1, got %d", result.Code)
			}
			for _, fragment := range []string{
				"Run run-1: 2 entries, 1 failed",
				"line 1: 0 22 * * 1-5 mail joe",
				"day of week    1 2 3 4 5",
				"line 2: 0 0 0 * * broken",
				"error          cannot parse day of month: day of month value 0 less than min 1",
			} {
				if !strings.Contains(result.Stdout, fragment) {
					t.Errorf("expected stdout to contain %q, got:\n%s", fragment, result.Stdout)
				}
			}
			if !strings.Contains(result.Stderr, "run_id=run-1") {
				t.Errorf("expected failures to be logged with the run ID, got:\n%s", result.Stderr)
			}
		})
	}
}

func TestCrontabMissingFile(t *testing.T) {
	result := e2e.Run(t, "", "crontab", filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(result.Err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", result.Err)
	}
	if result.Code != 1 {
		t.Errorf("expected exit code 1, got %d", result.Code)
	}
}

func TestCrontabTooManyArguments(t *testing.T) {
	result := e2e.Run(t, "", "crontab", "a", "b")
	if result.Code != 2 {
		t.Errorf("expected exit code 2, got %d (%v)", result.Code, result.Err)
	}
}
