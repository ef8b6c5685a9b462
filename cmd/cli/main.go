package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/glizzus/cron-expand/internal/config"
	"github.com/glizzus/cron-expand/internal/generator"
	"github.com/glizzus/cron-expand/internal/handler"
)

func runCLI() int {
	if err := config.LoadEnv(); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to load .env file", slog.Any("error", err))
		return 1
	}

	outputConfig, err := config.NewOutputConfigFromEnv()
	if err != nil {
		slog.Error("failed to load output config", slog.Any("error", err))
		return 1
	}

	logConfig, err := config.NewLogConfigFromEnv()
	if err != nil {
		slog.Error("failed to load log config", slog.Any("error", err))
		return 1
	}

	app := handler.NewApp(handler.Dependencies{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		RunIDs: &generator.UUIDV4Generator{},
		Output: outputConfig,
		Log:    logConfig,
	})

	err = app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return handler.ExitCode(err)
}

func main() {
	os.Exit(runCLI())
}
