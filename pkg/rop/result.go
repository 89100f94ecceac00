package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilError is stored in place of a nil error passed to Fail or Cancel,
// so a failed Result never reads as a success. Only a nil interface is
// replaced: a typed nil pointer is a real error value and is kept.
var ErrNilError = errors.New("rop: failure with nil error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple converts a (value, error) pair. Context cancellation and
// deadline errors become a Cancel result, any other error a Fail result.
// The error is stored as is.
func FromTuple[T any](v T, err error) Result[T] {
	if err == nil {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports any non-successful result, cancelled ones included.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the value and the error as a Go tuple. The value is the
// zero value of T for failed results. A zero Result is neither successful
// nor carries an error and unwraps to ErrNilError.
func (r Result[T]) Unwrap() (T, error) {
	if !r.isSuccess {
		var zero T
		if r.err == nil {
			return zero, ErrNilError
		}
		return zero, r.err
	}
	return r.result, nil
}

// Finally collapses a Result into a single value using the handler that
// matches its state.
func Finally[T, U any](r Result[T],
	onSuccess func(T) U,
	onError func(error) U,
	onCancel func(error) U) U {

	if r.IsSuccess() {
		return onSuccess(r.Result())
	} else if r.IsCancel() {
		return onCancel(r.Err())
	} else {
		return onError(r.Err())
	}
}
