package dial

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/internal/core/config"
	"github.com/guyguy2/dial/internal/core/contact"
	"github.com/guyguy2/dial/internal/core/history"
	"github.com/guyguy2/dial/internal/core/phone"
)

// mockContacts implements contact.Store in memory, preserving insert order.
type mockContacts struct {
	entries []contact.Contact
	addErr  error
}

func (m *mockContacts) Lookup(_ context.Context, name string) (string, error) {
	for _, c := range m.entries {
		if c.Name == name {
			return c.Number, nil
		}
	}
	for _, c := range m.entries {
		if strings.EqualFold(c.Name, name) {
			return c.Number, nil
		}
	}
	return "", contact.ErrNotFound
}

func (m *mockContacts) AddOrReplace(_ context.Context, name, number string) error {
	if m.addErr != nil {
		return m.addErr
	}
	kept := m.entries[:0]
	for _, c := range m.entries {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	m.entries = append(kept, contact.Contact{Name: name, Number: number})
	return nil
}

func (m *mockContacts) List(_ context.Context) ([]contact.Contact, error) {
	return m.entries, nil
}

// mockHistory implements history.Store in memory.
type mockHistory struct {
	numbers   []string
	recordErr error
}

func (m *mockHistory) Record(_ context.Context, number string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.numbers = append(m.numbers, number)
	return nil
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	return nil, nil
}

// mockOpener implements browser.Opener with fixed availability.
type mockOpener struct {
	installed map[string]bool
	noOpener  bool
	openErr   error
	opened    []string
	appHints  []string
}

func (m *mockOpener) Available(_ context.Context) bool { return !m.noOpener }

func (m *mockOpener) Installed(_ context.Context, appName string) bool {
	return m.installed[appName]
}

func (m *mockOpener) OpenURL(_ context.Context, url, appName string) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = append(m.opened, url)
	m.appHints = append(m.appHints, appName)
	return nil
}

type testDeps struct {
	contacts *mockContacts
	history  *mockHistory
	opener   *mockOpener
	warnings []string
	stdout   bytes.Buffer
}

func newTestService(t *testing.T, deps *testDeps) *Service {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	require.NoError(t, cfg.Validate())

	return New(
		deps.contacts,
		deps.history,
		deps.opener,
		&cfg,
		zerolog.Nop(),
		&deps.stdout,
		func(format string, args ...any) {
			deps.warnings = append(deps.warnings, format)
		},
	)
}

func defaultDeps() *testDeps {
	return &testDeps{
		contacts: &mockContacts{},
		history:  &mockHistory{},
		opener:   &mockOpener{installed: map[string]bool{"Google Chrome": true}},
	}
}

func TestPlaceDirectNumber(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	res, err := svc.Place(context.Background(), PlaceOptions{Target: "8558701311"})
	require.NoError(t, err)

	assert.Equal(t, "+18558701311", res.Number)
	assert.Equal(t, DirectNumber, res.Source)
	assert.Contains(t, res.URL, "%2B18558701311")

	require.Len(t, deps.opener.opened, 1)
	assert.Equal(t, res.URL, deps.opener.opened[0])
	assert.Equal(t, []string{"+18558701311"}, deps.history.numbers)
}

func TestPlaceResolvesContact(t *testing.T) {
	deps := defaultDeps()
	deps.contacts.entries = []contact.Contact{{Name: "Pizza", Number: "855-870-1311"}}
	svc := newTestService(t, deps)

	res, err := svc.Place(context.Background(), PlaceOptions{Target: "pizza"})
	require.NoError(t, err)

	assert.Equal(t, ResolvedContact, res.Source)
	assert.Equal(t, "+18558701311", res.Number)
}

func TestPlaceUnknownNameNoDigits(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "Pizza Place"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
	assert.Empty(t, deps.opener.opened)
}

func TestPlaceInvalidFormat(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "12345"})
	require.ErrorIs(t, err, phone.ErrInvalidFormat)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestPlaceSavesNormalizedContact(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{
		Target:        "(855) 870-1311",
		SaveContactAs: "Pizza",
	})
	require.NoError(t, err)

	require.Len(t, deps.contacts.entries, 1)
	assert.Equal(t, "+18558701311", deps.contacts.entries[0].Number)
}

func TestPlaceContactSaveFailureAborts(t *testing.T) {
	deps := defaultDeps()
	deps.contacts.addErr = errors.New("disk full")
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{
		Target:        "8558701311",
		SaveContactAs: "Pizza",
	})
	require.ErrorIs(t, err, ErrStoreWrite)
	assert.Equal(t, ExitGeneral, ExitCode(err))
	assert.Empty(t, deps.opener.opened)
}

func TestPlaceHistoryFailureIsWarning(t *testing.T) {
	deps := defaultDeps()
	deps.history.recordErr = errors.New("disk full")
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "8558701311"})
	require.NoError(t, err)

	assert.Len(t, deps.opener.opened, 1)
	assert.NotEmpty(t, deps.warnings)
}

func TestPlaceDryRun(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	res, err := svc.Place(context.Background(), PlaceOptions{
		Target:        "8558701311",
		SaveContactAs: "Pizza",
		DryRun:        true,
	})
	require.NoError(t, err)

	assert.Contains(t, res.URL, "%2B18558701311")
	assert.Empty(t, deps.opener.opened, "dry-run must not open anything")
	assert.Empty(t, deps.history.numbers, "dry-run must not record history")
	assert.Contains(t, deps.stdout.String(), "dry-run")
}

func TestPlaceDryRunStoreStillPreviews(t *testing.T) {
	// The store itself handles dry-run suppression; the service calls it
	// either way so the preview reports the save as successful.
	deps := defaultDeps()
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{
		Target:        "8558701311",
		SaveContactAs: "Pizza",
		DryRun:        true,
	})
	require.NoError(t, err)
}

func TestPlaceExplicitBrowser(t *testing.T) {
	deps := defaultDeps()
	deps.opener.installed["Firefox"] = true
	svc := newTestService(t, deps)

	res, err := svc.Place(context.Background(), PlaceOptions{
		Target:  "8558701311",
		Browser: browser.Firefox,
	})
	require.NoError(t, err)

	assert.Equal(t, browser.Firefox, res.Browser.Selected)
	assert.Equal(t, []string{"Firefox"}, deps.opener.appHints)
}

func TestPlaceNoBrowser(t *testing.T) {
	deps := defaultDeps()
	deps.opener.installed = nil
	deps.opener.noOpener = true
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "8558701311"})
	require.ErrorIs(t, err, browser.ErrNoneAvailable)
	assert.Equal(t, ExitNoBrowser, ExitCode(err))
}

func TestPlaceOpenFailure(t *testing.T) {
	deps := defaultDeps()
	deps.opener.openErr = errors.New("exit status 1")
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "8558701311"})
	require.ErrorIs(t, err, ErrOpenFailed)
	assert.Equal(t, ExitOpenFailed, ExitCode(err))
}

func TestPlaceEmptyTarget(t *testing.T) {
	deps := defaultDeps()
	svc := newTestService(t, deps)

	_, err := svc.Place(context.Background(), PlaceOptions{Target: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitGeneral, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitInvalidInput, ExitCode(ErrInvalidInput))
	assert.Equal(t, ExitInvalidInput, ExitCode(phone.ErrInvalidFormat))
	assert.Equal(t, ExitNoBrowser, ExitCode(browser.ErrNoneAvailable))
	assert.Equal(t, ExitOpenFailed, ExitCode(ErrOpenFailed))
}
