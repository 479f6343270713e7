package browser

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrNoneAvailable is returned when no usable browser or opener resolves.
var ErrNoneAvailable = errors.New("no usable browser available")

// Selector picks a browser binding for one invocation. Availability is probed
// fresh on every call, never cached.
type Selector struct {
	opener     Opener
	configured Name
	log        zerolog.Logger
}

// NewSelector creates a Selector. configured is the default browser from
// configuration, used when no explicit request is made or the request is
// unavailable. It may be empty.
func NewSelector(opener Opener, configured Name, log zerolog.Logger) *Selector {
	return &Selector{opener: opener, configured: configured, log: log}
}

// Select resolves a browser binding. Precedence: the explicit request if
// available, then the configured default if available, then the fixed
// fallback order, then the OS default opener. Returns ErrNoneAvailable only
// when the resolved choice is the OS opener and the opener itself is missing.
func (s *Selector) Select(ctx context.Context, requested Name) (Binding, error) {
	if requested != "" {
		if b, ok := s.usable(ctx, requested); ok {
			return b, nil
		}
		if requested == Default {
			// Explicitly asking for the OS opener on a host without one has
			// no further fallback.
			return Binding{}, ErrNoneAvailable
		}
		s.log.Debug().Str("browser", string(requested)).Msg("requested browser unavailable")
	}

	if s.configured != "" && s.configured != requested {
		if b, ok := s.usable(ctx, s.configured); ok {
			return b, nil
		}
		s.log.Debug().Str("browser", string(s.configured)).Msg("configured browser unavailable")
	}

	for _, n := range FallbackOrder {
		if s.opener.Installed(ctx, AppName(n)) {
			s.log.Debug().Str("browser", string(n)).Msg("using fallback browser")
			return Binding{Selected: n, AppName: AppName(n)}, nil
		}
	}

	if s.opener.Available(ctx) {
		return Binding{Selected: Default}, nil
	}

	return Binding{}, ErrNoneAvailable
}

// usable checks a single named browser, treating Default as usable only when
// the OS opener exists.
func (s *Selector) usable(ctx context.Context, n Name) (Binding, bool) {
	if n == Default {
		if s.opener.Available(ctx) {
			return Binding{Selected: Default}, true
		}
		return Binding{}, false
	}

	if s.opener.Installed(ctx, AppName(n)) {
		return Binding{Selected: n, AppName: AppName(n)}, true
	}
	return Binding{}, false
}
