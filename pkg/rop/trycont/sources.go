package trycont

import (
	"context"
	"iter"

	"github.com/go-softwarelab/common/pkg/seqerr"

	"github.com/ib-77/trycontinue/pkg/rop"
)

// Values returns an outcome sequence in which every item succeeds.
func Values[T any](items ...T) iter.Seq2[T, error] {
	return seqerr.Of(items...)
}

// FromResults adapts a sequence of rop.Result values to an outcome sequence.
func FromResults[T any](seq iter.Seq[rop.Result[T]]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for r := range seq {
			if !yield(r.Unwrap()) {
				return
			}
		}
	}
}

// TryMap lazily applies fn to each item. fn only runs for items that are
// actually pulled, so nothing past the first failure is computed when the
// sequence is consumed through an Iter.
func TryMap[In, Out any](items iter.Seq[In], fn func(In) (Out, error)) iter.Seq2[Out, error] {
	return seqerr.MapSeq(items, fn)
}

// FromChan drains results from ch until it is closed. If ctx is done first,
// ctx.Err() is produced as a final error element.
func FromChan[T any](ctx context.Context, ch <-chan rop.Result[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			select {
			case <-ctx.Done():
				var zero T
				yield(zero, ctx.Err())
				return
			case r, ok := <-ch:
				if !ok {
					return
				}
				if !yield(r.Unwrap()) {
					return
				}
			}
		}
	}
}
