// Package seqs complements github.com/go-softwarelab/common/pkg/seq with the
// helpers trycont.Continue callbacks need that the library lacks:
//
// - Sum: add up a sequence of numbers
// - Take: stop after exactly n values, without pulling the next one
package seqs
