// Package rop holds the Result[T] outcome type shared by the trycont and seqs
// packages: a tagged value that is either a success payload or an error,
// with cancellation tracked separately from ordinary failures.
//
// Sub-packages:
// - trycont: run ordinary sequence logic over a sequence of outcomes and
// surface the first failure as the overall result
// - seqs: lazy map/filter/fold style helpers over iter.Seq
package rop
