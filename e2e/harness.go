package e2e

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glizzus/cron-expand/internal/config"
	"github.com/glizzus/cron-expand/internal/generator"
	"github.com/glizzus/cron-expand/internal/handler"
)

// Result captures one in-process run of the cron-expand app.
type Result struct {
	Stdout string
	Stderr string
	Err    error
	Code   int
}

// Run executes the app with args the way cmd/cli does, reading configuration
// from the environment. Run IDs come from a sequence so output is stable.
func Run(t *testing.T, stdin string, args ...string) Result {
	t.Helper()

	outputConfig, err := config.NewOutputConfigFromEnv()
	if err != nil {
		t.Fatalf("failed to load output config: %v", err)
	}
	logConfig, err := config.NewLogConfigFromEnv()
	if err != nil {
		t.Fatalf("failed to load log config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	app := handler.NewApp(handler.Dependencies{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		RunIDs: &generator.SequenceGenerator{Prefix: "run"},
		Output: outputConfig,
		Log:    logConfig,
	})

	err = app.Run(append([]string{"cron-expand"}, args...))
	return Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
		Code:   handler.ExitCode(err),
	}
}
