// Package rule implements the Bracket Rule Engine: a batch processor that
// exhaustively classifies a stream of bracket nodes with fixed-length rules.
//
// Unlike pattern.Processor, elements that do not eventually match a rule are
// an error, not passed through.
//
// Rules are tried in declaration order: when several rules of the same length
// match the buffer, only the first one fires. A zero-length rule matches the
// empty buffer and therefore fires once, before any input is read.
//
package rule

import (
	"github.com/db47h/lexkit/pattern"
	"github.com/db47h/lexkit/token"
)

// Rule pairs a pattern of bracket matchers with a reducer.
//
type Rule[T any] struct {
	pat    pattern.Pattern[token.Bracket]
	reduce func(run []token.Bracket) T
}

// New returns a new Rule. The run passed to reduce is owned by reduce.
//
func New[T any](p pattern.Pattern[token.Bracket], reduce func(run []token.Bracket) T) Rule[T] {
	if reduce == nil {
		panic("nil reducer")
	}
	return Rule[T]{pat: p, reduce: reduce}
}

// Len returns the length of the rule's pattern.
//
func (r Rule[T]) Len() int {
	return len(r.pat)
}

// Process reads src to exhaustion, firing rules as their patterns match the
// pending buffer, and returns the reducer outputs in order.
//
// Process fails with a *BufferExceedsPatternsError as soon as the buffer grows
// longer than the longest rule, and with a *BufferUnmatchedError if input ends
// with a non-empty buffer. If src implements
//
//	interface{ Err() error }
//
// a non-nil error returned by Err once src is exhausted is returned as is.
//
func Process[T any](rules []Rule[T], src token.Source[token.Bracket]) ([]T, error) {
	maxLen := 0
	for i := range rules {
		if l := rules[i].Len(); l > maxLen {
			maxLen = l
		}
	}

	var (
		out []T
		buf []token.Bracket
	)
	for {
		if len(buf) > maxLen {
			return nil, &BufferExceedsPatternsError{Buffer: buf}
		}
		for i := range rules {
			if rules[i].pat.Match(buf) {
				out = append(out, rules[i].reduce(buf))
				buf = nil
				break
			}
		}
		b, ok := src.Next()
		if !ok {
			if es, ok := src.(interface{ Err() error }); ok {
				if err := es.Err(); err != nil {
					return nil, err
				}
			}
			if len(buf) > 0 {
				return nil, &BufferUnmatchedError{Buffer: buf}
			}
			return out, nil
		}
		buf = append(buf, b)
	}
}

// ProcessSlice is a shorthand for Process(rules, token.Slice(bs)).
//
func ProcessSlice[T any](rules []Rule[T], bs []token.Bracket) ([]T, error) {
	return Process(rules, token.Slice(bs))
}
