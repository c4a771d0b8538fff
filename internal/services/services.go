// Package services contains the application services of PathPradarshak:
// accounts and sessions, the post feed, the career quiz, alumni stories and
// display preferences.
//
// Every mutating operation is a single docstore Update, so concurrent calls
// never lose each other's writes and a failed call writes nothing.
package services

import (
	"time"

	"github.com/Roop3005/path-darshak/internal/logging"
)

// Option configures a service.
type Option func(*base)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithLogger sets the logger a service reports mutations to.
func WithLogger(l logging.Logger) Option {
	return func(b *base) { b.log = l }
}

type base struct {
	now func() time.Time
	log logging.Logger
}

func newBase(opts []Option) base {
	b := base{now: time.Now, log: logging.NewNopLogger()}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// nextID returns the creation time in milliseconds, moved past maxID when
// the clock has not advanced beyond an existing id.
func nextID(now time.Time, maxID int64) int64 {
	id := now.UnixMilli()
	if id <= maxID {
		id = maxID + 1
	}
	return id
}
