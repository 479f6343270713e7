package browser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/guyguy2/dial/pkg/executil"
	"github.com/rs/zerolog"
)

// Launcher implements Opener using the macOS open(1) command.
type Launcher struct {
	openPath string
	exec     executil.Executor
	log      zerolog.Logger
}

// NewLauncher creates a Launcher using the given open binary path.
func NewLauncher(openPath string, exec executil.Executor, log zerolog.Logger) *Launcher {
	return &Launcher{openPath: openPath, exec: exec, log: log}
}

// Available reports whether the open binary can be found at all.
func (l *Launcher) Available(_ context.Context) bool {
	_, err := exec.LookPath(l.openPath)
	return err == nil
}

// Installed reports whether an application bundle exists. open -Ra exits
// non-zero when the application cannot be found.
func (l *Launcher) Installed(ctx context.Context, appName string) bool {
	_, err := l.exec.Run(ctx, l.openPath, "-Ra", appName)
	if err != nil {
		l.log.Debug().Str("app", appName).Msg("application not installed")
		return false
	}
	return true
}

// OpenURL opens url with the named application, or the OS default handler
// when appName is empty.
func (l *Launcher) OpenURL(ctx context.Context, url, appName string) error {
	args := []string{url}
	if appName != "" {
		args = []string{"-a", appName, url}
	}

	if _, err := l.exec.Run(ctx, l.openPath, args...); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	return nil
}
