package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/guyguy2/dial/internal/printer"
)

type HistoryCmd struct {
	flags *Flags

	// Command-specific flags
	limit int
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View recent call history",
		UsageText: "dial history [options]",
		Description: `Lists recent calls with their timestamp and dialed number,
oldest first. The log keeps at most the configured number of entries.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "show at most N entries (0 shows all retained)",
				Destination: &cmd.limit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listHistory(ctx, c, cmd.flags, cmd.limit)
		},
	})

	return app
}

// listHistory prints the call history table. Shared by the history
// subcommand and the root --history flag.
func listHistory(ctx context.Context, c *cli.Command, flags *Flags, limit int) error {
	entries, err := flags.History.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if len(entries) == 0 {
		printer.Ctx(ctx).Infof("No call history")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tNUMBER")

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.FormatTimestamp(), e.Number)
	}

	return w.Flush()
}
