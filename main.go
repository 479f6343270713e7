package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/internal/commands"
	"github.com/guyguy2/dial/internal/core/config"
	"github.com/guyguy2/dial/internal/dial"
	"github.com/guyguy2/dial/internal/printer"
	"github.com/guyguy2/dial/internal/store/flatfile"
	"github.com/guyguy2/dial/pkg/executil"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	// -v belongs to --verbose; keep --version long-form only
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := &cli.Command{
		Name:      "dial",
		Usage:     "Place phone calls from the terminal",
		UsageText: "dial [options] <number or contact name>",
		Description: `Dial resolves a phone number or saved contact name to a canonical
dialable number and opens the call in a browser through the web
dialing endpoint.

Numbers may be given in any common format:
  dial 855-870-1311
  dial "+44 20 7183 8750"
  dial pizza --browser chrome
  dial 8558701311 --add-contact "Pizza Place"`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DIAL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("DIAL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DIAL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("DIAL_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "enable debug logging",
				Destination: &flags.Verbose,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"d"},
				Usage:       "show what would happen without opening anything or writing state",
				Destination: &flags.DryRun,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level := flags.LogLevel
			if flags.Verbose {
				level = "debug"
			}
			if err := setupLogger(level, flags.LogFile); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			var (
				contacts = flatfile.NewContactStore(cfg.ContactsFile(), flags.DryRun)
				hist     = flatfile.NewHistoryStore(cfg.HistoryFile(), cfg.HistoryLimit, flags.DryRun)
				exec     = &executil.RealExecutor{}
				logger   = log.With().Str("component", "dial").Logger()
				opener   = browser.NewLauncher(cfg.OpenPath, exec, logger.With().Str("component", "launcher").Logger())
			)

			flags.Contacts = contacts
			flags.History = hist
			flags.Service = dial.New(contacts, hist, opener, cfg, logger, os.Stdout, p.Warnf)
			return ctx, nil
		},
	}

	callCmd := commands.NewCallCmd(flags)

	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewContactsCmd(flags).Register(app)

	// The call action lives on the root command
	app.Flags = append(app.Flags, callCmd.Flags()...)
	app.Action = callCmd.Run

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		printer.Ctx(ctx).FatalError(err)
		exitCode = dial.ExitCode(err)
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		// Write to both console and file
		output = io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			file,
		)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
