package service

import (
	"errors"
	"time"
)

// ErrInvalidInput marks caller mistakes such as out-of-range values.
var ErrInvalidInput = errors.New("invalid input")

type options struct {
	now      func() time.Time
	observer UseCaseObserver
}

// Option configures a service.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:      func() time.Time { return time.Now().UTC() },
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
