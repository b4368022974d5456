package redirect

import "errors"

// DefaultMaxRedirects is the redirect limit applied when
// Config.MaxRedirects is zero. It matches net/http.Client behavior.
const DefaultMaxRedirects = 10

// Config holds configuration for redirect behavior.
//
// All fields are optional. Zero values trigger default behavior:
//   - MaxRedirects: DefaultMaxRedirects
//   - DisableFollow: false (redirects are followed automatically)
//
// Config is a value type. Changes to a Config after passing it to
// NewFollower do not affect the created Follower.
type Config struct {
	// MaxRedirects limits the number of redirects followed in one
	// chain.
	//
	// If zero, uses DefaultMaxRedirects.
	// If positive, redirects are followed up to this limit.
	// If -1, redirects are followed without limit (not recommended).
	MaxRedirects int

	// DisableFollow switches the Follower into manual mode. Instead of
	// following a redirect, Do returns the redirect response with a
	// Continuation attached, and the caller drives the chain one hop
	// at a time via Resume. The limit and loop checks still apply;
	// they run when the Continuation is resumed.
	DisableFollow bool
}

// DefaultConfig returns a Config with recommended default values:
//   - MaxRedirects: DefaultMaxRedirects
//   - DisableFollow: false
//
// Callers can modify the returned Config before passing it to
// NewFollower.
func DefaultConfig() Config {
	return Config{
		MaxRedirects: DefaultMaxRedirects,
	}
}

// applyDefaults returns a copy of the config with defaults applied for
// zero values.
func (c Config) applyDefaults() Config {
	cfg := c

	if cfg.MaxRedirects == 0 {
		cfg.MaxRedirects = DefaultMaxRedirects
	}

	return cfg
}

// validate checks if the configuration is valid.
func (c Config) validate() error {
	if c.MaxRedirects < -1 {
		return errors.New("redirect: MaxRedirects must be >= -1")
	}
	return nil
}
