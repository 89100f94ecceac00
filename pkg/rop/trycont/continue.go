package trycont

import (
	"iter"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/google/uuid"

	"github.com/ib-77/trycontinue/pkg/rop"
)

// Continue runs fn over the success payloads of seq and reconciles its
// return value with the first error seq produced.
//
// fn is called exactly once with a fresh Iter. When seq yields an error the
// Iter stops at that element and Continue returns a failed Result carrying
// the error unchanged, discarding whatever fn returned. Otherwise the
// Result is a success holding fn's return value.
//
// A captured context.Canceled or context.DeadlineExceeded comes back as a
// cancelled Result: IsCancel() is true for it, IsFailure() is true as for
// any other error, and Err() is the captured error.
func Continue[T, R any](seq iter.Seq2[T, error], fn func(*Iter[T]) R, opts ...Option) rop.Result[R] {
	cfg := newConfig(opts)
	log := cfg.logger
	if slogx.IsDebug(log) {
		log = log.With(slog.String("run", uuid.NewString()))
	}

	it := newIter(seq, func(index, yielded int, err error) {
		log.Debug("outcome sequence failed",
			slog.Int("index", index),
			slog.Int("yielded", yielded),
			slog.Any("error", err))
		if cfg.onError != nil {
			cfg.onError(index, err)
		}
	})
	defer it.close()

	r := fn(it)
	it.close()

	log.Debug("outcome sequence finished",
		slog.Int("yielded", it.Yielded()),
		slog.Bool("failed", it.Failed()))

	return rop.FromTuple(r, it.Err())
}

// Try is Continue returning a Go (value, error) pair. On failure the value
// is the zero value of R.
func Try[T, R any](seq iter.Seq2[T, error], fn func(*Iter[T]) R, opts ...Option) (R, error) {
	return Continue(seq, fn, opts...).Unwrap()
}

// ContinueResults is Continue over a sequence of rop.Result values.
func ContinueResults[T, R any](seq iter.Seq[rop.Result[T]], fn func(*Iter[T]) R, opts ...Option) rop.Result[R] {
	return Continue(FromResults(seq), fn, opts...)
}
