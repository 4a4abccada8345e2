// Package pattern implements fixed-length patterns over structurally comparable
// values and the streaming Lexeme Pattern Engine built on them.
//
// A Pattern is an ordered list of matchers tested position by position against
// a run of the same length. Matchers are Wild (anything), Exact (structural
// equality through LMatch, spans ignored) and Pred (arbitrary predicate).
// Predicates may be called several times for the same element and must be
// free of side effects.
//
package pattern

// Element is implemented by values that support position-blind structural
// equality, like token.Lexeme and token.Bracket.
//
type Element[T any] interface {
	LMatch(o T) bool
}

type matchKind uint8

const (
	wild matchKind = iota
	exact
	pred
)

// Matcher matches a single element.
//
type Matcher[T Element[T]] struct {
	kind  matchKind
	value T
	pred  func(T) bool
}

// Wild returns a Matcher that matches any element.
//
func Wild[T Element[T]]() Matcher[T] {
	return Matcher[T]{kind: wild}
}

// Exact returns a Matcher that matches elements e for which v.LMatch(e) is
// true.
//
func Exact[T Element[T]](v T) Matcher[T] {
	return Matcher[T]{kind: exact, value: v}
}

// Pred returns a Matcher that matches elements for which f returns true.
//
func Pred[T Element[T]](f func(T) bool) Matcher[T] {
	if f == nil {
		panic("nil predicate")
	}
	return Matcher[T]{kind: pred, pred: f}
}

// Match reports whether m matches e.
//
func (m Matcher[T]) Match(e T) bool {
	switch m.kind {
	case exact:
		return m.value.LMatch(e)
	case pred:
		return m.pred(e)
	}
	return true
}

// Pattern is a fixed-length sequence of matchers.
//
type Pattern[T Element[T]] []Matcher[T]

// Of returns a Pattern made of ms.
//
func Of[T Element[T]](ms ...Matcher[T]) Pattern[T] {
	return Pattern[T](ms)
}

// Match reports whether run has the same length as p and every element of run
// is matched by the matcher at the same position. The empty pattern matches the
// empty run only.
//
func (p Pattern[T]) Match(run []T) bool {
	if len(run) != len(p) {
		return false
	}
	for i := range p {
		if !p[i].Match(run[i]) {
			return false
		}
	}
	return true
}
