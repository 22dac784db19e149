package store

import "time"

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithReporter replaces the default reporter, which logs a warning.
func WithReporter(r Reporter) Option {
	return func(s *Store) {
		if r != nil {
			s.report = r
		}
	}
}

// WithWriteTimeout bounds each save. Zero means no bound beyond the caller's context.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.writeTimeout = d
	}
}
