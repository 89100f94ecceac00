package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for outcomes that carry a value or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the computation was cancelled
	IsCancel() bool
}

var _ WithCancel[int] = Result[int]{}
