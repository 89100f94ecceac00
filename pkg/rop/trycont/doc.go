// Package trycont lets ordinary sequence code run over a sequence of
// fallible outcomes while still reporting the first failure.
//
// Continue wraps an iter.Seq2[T, error] in an Iter that only yields the
// success payloads and stops at the first error. The callback sees a plain
// sequence of T and can map, filter, count or sum it (for example with
// github.com/go-softwarelab/common/pkg/seq); once the callback
// returns, the captured error (if any) replaces its result:
//
//	evens := trycont.Continue(
//		trycont.TryMap(slices.Values(words), strconv.Atoi),
//		func(it *trycont.Iter[int]) int {
//			return seq.Count(seq.Filter(it.All(), isEven))
//		})
//
// Only the first error is kept and iteration never resumes past it.
//
// Sources:
// - Values: a sequence of successes
// - TryMap: apply a (value, error) function lazily
// - FromResults: adapt a sequence of rop.Result
// - FromChan: drain a channel of rop.Result
package trycont
