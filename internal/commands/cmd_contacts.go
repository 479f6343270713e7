package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/guyguy2/dial/internal/printer"
)

type ContactsCmd struct {
	flags *Flags

	// Command-specific flags
	filter string
}

// NewContactsCmd creates a new contacts command
func NewContactsCmd(flags *Flags) *ContactsCmd {
	return &ContactsCmd{flags: flags}
}

// Register adds the contacts command to the application
func (cmd *ContactsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "contacts",
		Usage:     "List stored contacts",
		UsageText: "dial contacts [options]",
		Description: `Lists stored contacts in file order. Numbers are shown as stored,
which is canonical form for contacts saved through --add-contact.

Example:
  dial contacts --filter 'Pizza*'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "only show contacts whose name matches a glob pattern",
				Destination: &cmd.filter,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listContacts(ctx, c, cmd.flags, cmd.filter)
		},
	})

	return app
}

// listContacts prints the contact table. Shared by the contacts subcommand
// and the root --list-contacts flag.
func listContacts(ctx context.Context, c *cli.Command, flags *Flags, filter string) error {
	contacts, err := flags.Contacts.List(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	if filter != "" {
		kept := contacts[:0]
		for _, entry := range contacts {
			ok, err := doublestar.Match(filter, entry.Name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern %q: %w", filter, err)
			}
			if ok {
				kept = append(kept, entry)
			}
		}
		contacts = kept
	}

	if len(contacts) == 0 {
		printer.Ctx(ctx).Infof("No contacts found")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tNUMBER")

	for _, entry := range contacts {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Number)
	}

	return w.Flush()
}
