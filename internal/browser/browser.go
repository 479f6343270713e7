// Package browser provides browser selection and URL opening for macOS.
package browser

import (
	"context"
	"fmt"
	"strings"
)

// Name identifies a supported browser.
type Name string

const (
	Chrome  Name = "chrome"
	Safari  Name = "safari"
	Firefox Name = "firefox"
	Edge    Name = "edge"
	// Default means the OS-level default opener (no -a application hint).
	Default Name = "default"
)

// FallbackOrder is the fixed precedence used when neither an explicit request
// nor a configured default browser is usable.
var FallbackOrder = []Name{Chrome, Safari, Firefox, Edge}

// appNames maps browser names to their macOS application bundle names.
var appNames = map[Name]string{
	Chrome:  "Google Chrome",
	Safari:  "Safari",
	Firefox: "Firefox",
	Edge:    "Microsoft Edge",
}

// Parse converts a user-supplied browser name to a Name.
func Parse(s string) (Name, error) {
	switch n := Name(strings.ToLower(strings.TrimSpace(s))); n {
	case Chrome, Safari, Firefox, Edge, Default:
		return n, nil
	default:
		return "", fmt.Errorf("unknown browser %q (expected chrome, safari, firefox, edge, or default)", s)
	}
}

// Known returns true if s parses as a supported browser name.
func Known(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// AppName returns the macOS application bundle name for a browser.
// Default has no application name; the opener is used without a hint.
func AppName(n Name) string {
	return appNames[n]
}

// Binding is the outcome of browser selection for one invocation.
type Binding struct {
	Selected Name
	// AppName is the resolved application bundle name, empty for Default.
	AppName string
}

// Opener abstracts the OS primitives for probing installed applications and
// opening URLs, so selection logic stays host-independent.
type Opener interface {
	// Available reports whether the OS-level opener itself is usable.
	Available(ctx context.Context) bool
	// Installed reports whether the named application bundle exists on the host.
	Installed(ctx context.Context, appName string) bool
	// OpenURL opens url, optionally hinting a specific application.
	// An empty appName uses the OS default handler.
	OpenURL(ctx context.Context, url, appName string) error
}
