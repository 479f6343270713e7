// Package dial orchestrates the call pipeline: resolve a target token to a
// canonical number, pick a browser, and open the dial endpoint.
package dial

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/internal/core/config"
	"github.com/guyguy2/dial/internal/core/contact"
	"github.com/guyguy2/dial/internal/core/history"
	"github.com/guyguy2/dial/internal/core/phone"
	"github.com/guyguy2/dial/internal/styles"
	"github.com/guyguy2/dial/pkg/tmpl"
)

// SourceKind records how a target token became a number.
type SourceKind string

const (
	// DirectNumber means the token was treated as a phone number as given.
	DirectNumber SourceKind = "direct"
	// ResolvedContact means the token matched a stored contact.
	ResolvedContact SourceKind = "contact"
)

// PlaceOptions configures one call placement.
type PlaceOptions struct {
	Target        string       // phone number or contact name
	Browser       browser.Name // explicit browser request, empty for none
	SaveContactAs string       // save the resolved number under this name
	DryRun        bool
}

// Result describes a completed (or previewed) call placement.
type Result struct {
	RawInput string
	Number   string // canonical +-prefixed dialable number
	Source   SourceKind
	Browser  browser.Binding
	URL      string
}

// Service orchestrates call placement.
type Service struct {
	contacts contact.Store
	history  history.Store
	selector *browser.Selector
	opener   browser.Opener
	config   *config.Config
	log      zerolog.Logger
	stdout   io.Writer
	warnf    func(format string, args ...any)
}

// New creates a new Service. warnf receives user-facing warnings for
// bookkeeping failures that do not abort an already-placed call.
func New(
	contacts contact.Store,
	hist history.Store,
	opener browser.Opener,
	cfg *config.Config,
	log zerolog.Logger,
	stdout io.Writer,
	warnf func(format string, args ...any),
) *Service {
	configured, err := browser.Parse(cfg.DefaultBrowser)
	if err != nil {
		// Config validation rejects unknown names; an empty default means
		// the selector skips straight to the fallback chain.
		configured = ""
	}

	return &Service{
		contacts: contacts,
		history:  hist,
		selector: browser.NewSelector(opener, configured, log.With().Str("component", "selector").Logger()),
		opener:   opener,
		config:   cfg,
		log:      log,
		stdout:   stdout,
		warnf:    warnf,
	}
}

// Place runs the full pipeline: resolve, validate, normalize, optionally save
// a contact, select a browser, and dispatch the call URL. Every failure is
// terminal; ExitCode maps the returned error to a process exit code.
func (s *Service) Place(ctx context.Context, opts PlaceOptions) (*Result, error) {
	token := strings.TrimSpace(opts.Target)
	s.log.Debug().Str("target", token).Bool("dry_run", opts.DryRun).Msg("placing call")

	number, source, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	canonical, err := phone.Canonicalize(number)
	if err != nil {
		return nil, fmt.Errorf("validate %q: %w", number, err)
	}
	s.log.Debug().Str("number", canonical).Str("source", string(source)).Msg("resolved target")

	// Stored contacts always hold the canonical number, not the raw input.
	if opts.SaveContactAs != "" {
		if err := s.contacts.AddOrReplace(ctx, opts.SaveContactAs, canonical); err != nil {
			return nil, fmt.Errorf("save contact %q: %w: %w", opts.SaveContactAs, ErrStoreWrite, err)
		}
		s.log.Info().Str("name", opts.SaveContactAs).Str("number", canonical).Msg("contact saved")
	}

	binding, err := s.selector.Select(ctx, opts.Browser)
	if err != nil {
		return nil, err
	}

	url, err := s.buildURL(canonical)
	if err != nil {
		return nil, fmt.Errorf("build call url: %w", err)
	}

	res := &Result{
		RawInput: opts.Target,
		Number:   canonical,
		Source:   source,
		Browser:  binding,
		URL:      url,
	}

	if opts.DryRun {
		s.printDispatch(res, true)
		return res, nil
	}

	// The history append and the call itself are independent: a bookkeeping
	// failure must not abort the call, so it is downgraded to a warning.
	if err := s.history.Record(ctx, canonical); err != nil {
		s.log.Warn().Err(err).Msg("failed to record call history")
		s.warnf("could not record call history: %v", err)
	}

	if err := s.opener.OpenURL(ctx, url, binding.AppName); err != nil {
		return nil, fmt.Errorf("dispatch %s: %w: %w", canonical, ErrOpenFailed, err)
	}

	s.printDispatch(res, false)
	s.log.Info().Str("number", canonical).Str("browser", string(binding.Selected)).Msg("call dispatched")
	return res, nil
}

// resolve maps the raw token to a number via contact lookup, or passes it
// through when it plausibly is a number itself.
func (s *Service) resolve(ctx context.Context, token string) (string, SourceKind, error) {
	if token == "" {
		return "", "", fmt.Errorf("target is required: %w", ErrInvalidInput)
	}

	number, err := s.contacts.Lookup(ctx, token)
	switch {
	case err == nil:
		s.log.Debug().Str("contact", token).Msg("resolved contact")
		return number, ResolvedContact, nil
	case errors.Is(err, contact.ErrNotFound):
		if !phone.HasDigit(token) {
			return "", "", fmt.Errorf("%q: %w", token, ErrInvalidInput)
		}
		return token, DirectNumber, nil
	default:
		return "", "", fmt.Errorf("lookup contact: %w", err)
	}
}

// buildURL renders the endpoint template. Only the + needs encoding: every
// other character in a canonical number is a digit and already URL-safe.
func (s *Service) buildURL(canonical string) (string, error) {
	encoded := strings.ReplaceAll(canonical, "+", "%2B")
	return tmpl.Render(s.config.CallURL, config.CallURLData{Number: encoded})
}

// printDispatch writes the user-facing dispatch summary to stdout.
func (s *Service) printDispatch(res *Result, dryRun bool) {
	header := fmt.Sprintf("Calling %s", res.Number)
	if res.Source == ResolvedContact {
		header = fmt.Sprintf("Calling %s (%s)", res.RawInput, res.Number)
	}

	if dryRun {
		fmt.Fprintln(s.stdout, styles.DryRunStyle.Render("[dry-run]")+" "+styles.CallHeaderStyle.Render(header))
	} else {
		fmt.Fprintln(s.stdout, styles.CallHeaderStyle.Render(header))
	}

	via := "system default"
	if res.Browser.AppName != "" {
		via = res.Browser.AppName
	}
	fmt.Fprintln(s.stdout, styles.DetailStyle.Render("  via "+via))
	fmt.Fprintln(s.stdout, styles.URLStyle.Render("  "+res.URL))
}
