package trycont

import "iter"

// Iter yields the success payloads of an outcome sequence and records the
// first error it meets. Once an error is recorded, or the underlying
// sequence is exhausted, Iter reports end-of-sequence forever and never
// pulls from the underlying sequence again.
//
// An Iter is handed out by Continue and is only valid for the duration of
// the callback. It holds no locks and must not be shared between
// goroutines.
type Iter[T any] struct {
	next func() (T, error, bool)
	stop func()

	err  error
	done bool

	pulled  int
	yielded int

	onError func(index, yielded int, err error)
}

func newIter[T any](seq iter.Seq2[T, error], onError func(index, yielded int, err error)) *Iter[T] {
	if seq == nil {
		seq = func(func(T, error) bool) {}
	}
	next, stop := iter.Pull2(seq)
	return &Iter[T]{
		next:    next,
		stop:    stop,
		onError: onError,
	}
}

// Next returns the next success payload. It returns false when the
// underlying sequence is exhausted or has produced an error.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}

	v, err, ok := it.next()
	if !ok {
		it.close()
		return zero, false
	}

	index := it.pulled
	it.pulled++
	if err != nil {
		it.err = err
		it.close()
		if it.onError != nil {
			it.onError(index, it.yielded, err)
		}
		return zero, false
	}

	it.yielded++
	return v, true
}

// All returns a view of the remaining payloads for use with range. Leaving
// the loop early keeps the Iter usable: a later call to All or Next resumes
// with the following element.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Err returns the captured error, or nil while none has been seen.
func (it *Iter[T]) Err() error {
	return it.err
}

// Failed reports whether an error has been captured.
func (it *Iter[T]) Failed() bool {
	return it.err != nil
}

// Yielded returns the number of success payloads produced so far.
func (it *Iter[T]) Yielded() int {
	return it.yielded
}

// close releases the underlying sequence. It is safe to call repeatedly.
func (it *Iter[T]) close() {
	if it.done {
		return
	}
	it.done = true
	it.stop()
}
