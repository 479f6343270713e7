package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/internal/dial"
	"github.com/guyguy2/dial/internal/printer"
)

type CallCmd struct {
	flags *Flags

	// Command-specific flags
	browserName  string
	addContact   string
	showHistory  bool
	listContacts bool
}

// NewCallCmd creates the default call action bound to the root command.
func NewCallCmd(flags *Flags) *CallCmd {
	return &CallCmd{flags: flags}
}

// Flags returns the root-level flags for the call action.
func (cmd *CallCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "browser",
			Aliases:     []string{"b"},
			Usage:       "browser to open the call with (chrome, safari, firefox, edge, default)",
			Destination: &cmd.browserName,
		},
		&cli.StringFlag{
			Name:        "add-contact",
			Aliases:     []string{"c"},
			Usage:       "save the resolved number as a contact under NAME",
			Destination: &cmd.addContact,
		},
		&cli.BoolFlag{
			Name:        "history",
			Usage:       "print recent call history and exit",
			Destination: &cmd.showHistory,
		},
		&cli.BoolFlag{
			Name:        "list-contacts",
			Usage:       "print all stored contacts and exit",
			Destination: &cmd.listContacts,
		},
	}
}

// Run is the root command action: resolve the target and place the call.
func (cmd *CallCmd) Run(ctx context.Context, c *cli.Command) error {
	if cmd.showHistory {
		return listHistory(ctx, c, cmd.flags, 0)
	}
	if cmd.listContacts {
		return listContacts(ctx, c, cmd.flags, "")
	}

	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("target required (phone number or contact name). Run 'dial --help' for usage: %w", dial.ErrInvalidInput)
	}
	target := strings.Join(args, " ")

	var requested browser.Name
	if cmd.browserName != "" {
		var err error
		requested, err = browser.Parse(cmd.browserName)
		if err != nil {
			return fmt.Errorf("%w: %w", dial.ErrInvalidInput, err)
		}
	}

	res, err := cmd.flags.Service.Place(ctx, dial.PlaceOptions{
		Target:        target,
		Browser:       requested,
		SaveContactAs: cmd.addContact,
		DryRun:        cmd.flags.DryRun,
	})
	if err != nil {
		return fmt.Errorf("place call: %w", err)
	}

	p := printer.Ctx(ctx)
	if cmd.addContact != "" {
		p.Successf("Saved %s as %q", res.Number, cmd.addContact)
	}

	return nil
}
