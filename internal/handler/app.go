package handler

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/glizzus/cron-expand/internal/config"
	"github.com/glizzus/cron-expand/internal/generator"
	"github.com/glizzus/cron-expand/internal/presenters"
)

// Dependencies are everything the command line app needs from its environment.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	RunIDs generator.Generator[string]

	Output *config.OutputConfig
	Log    *config.LogConfig
}

type commandHandler struct {
	deps   Dependencies
	logger *slog.Logger
}

// globalFlags are defined once on the app; subcommands read them through the
// context lineage.
func globalFlags(deps Dependencies) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: table, json or yaml",
			Value:   deps.Output.Format,
		},
		&cli.IntFlag{
			Name:  "label-width",
			Usage: "width of the label column in table output",
			Value: deps.Output.LabelWidth,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn or error",
			Value: deps.Log.Level,
		},
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return &UsageError{Message: err.Error()}
}

// NewApp builds the cron-expand command line app. Errors are returned from
// Run rather than terminating the process; use ExitCode to pick a status.
func NewApp(deps Dependencies) *cli.App {
	h := &commandHandler{
		deps:   deps,
		logger: slog.New(slog.NewTextHandler(deps.Stderr, nil)),
	}

	return &cli.App{
		Name:           "cron-expand",
		Usage:          "Expand every field of a cron expression into the values it matches",
		ArgsUsage:      `"<minute> <hour> <day of month> <month> <day of week> <command>"`,
		Reader:         deps.Stdin,
		Writer:         deps.Stdout,
		ErrWriter:      deps.Stderr,
		Flags:          globalFlags(deps),
		Before:         h.setupLogger,
		OnUsageError:   usageError,
		Action:         h.expand,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:         "expand",
				Usage:        "Expand a single cron expression",
				ArgsUsage:    `"<expression>" | <minute> <hour> <day of month> <month> <day of week> <command...>`,
				Action:       h.expand,
				OnUsageError: usageError,
			},
			{
				Name:         "validate",
				Usage:        "Check that a cron expression parses, without printing its fields",
				ArgsUsage:    `"<expression>"`,
				Action:       h.validate,
				OnUsageError: usageError,
			},
			{
				Name:         "crontab",
				Usage:        "Expand every entry of a crontab file (use - for stdin)",
				ArgsUsage:    "[file]",
				Action:       h.crontab,
				OnUsageError: usageError,
			},
		},
	}
}

func (h *commandHandler) setupLogger(c *cli.Context) error {
	level, err := config.ParseLevel(c.String("log-level"))
	if err != nil {
		return &UsageError{Message: err.Error()}
	}
	h.logger = slog.New(slog.NewTextHandler(h.deps.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (h *commandHandler) outputOptions(c *cli.Context) (presenters.Format, int, error) {
	format, err := presenters.ParseFormat(c.String("format"))
	if err != nil {
		return "", 0, &UsageError{Message: err.Error()}
	}
	width := c.Int("label-width")
	if width < 1 {
		return "", 0, &UsageError{Message: "label-width must be at least 1"}
	}
	return format, width, nil
}
