package spell

import "log/slog"

const (
	// DefaultThreshold is the edit distance at or below which a dictionary
	// word is accepted as a correction.
	DefaultThreshold = 2

	// DefaultMaxCandidates caps the ranked candidate list offered to
	// interactive correction flows.
	DefaultMaxCandidates = 5

	// DefaultDistanceCacheSize bounds the memo of computed distance pairs.
	DefaultDistanceCacheSize = 1 << 16
)

// Option configures a Checker.
type Option func(*Checker)

// WithThreshold overrides the acceptance threshold for corrections.
func WithThreshold(n int) Option {
	return func(c *Checker) {
		if n >= 0 {
			c.threshold = n
		}
	}
}

// WithCache makes the checker use a shared suggestion cache instead of
// creating its own.
func WithCache(cache *Cache) Option {
	return func(c *Checker) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithMaxCandidates caps how many ranked candidates CorrectText offers per
// misspelled word.
func WithMaxCandidates(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.maxCandidates = n
		}
	}
}

// WithDistanceCache sizes the distance memo. A size of 0 disables memoization.
func WithDistanceCache(size int) Option {
	return func(c *Checker) {
		if size >= 0 {
			c.distCacheSize = size
		}
	}
}

// WithLogger attaches a structured logger for scan and purge events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}
