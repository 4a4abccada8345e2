package token

// Source is a single-pass, pull-based sequence of values. Next returns the next
// value and true, or the zero value and false once the sequence is exhausted.
// A Source is not restartable: values already returned are never offered
// again.
//
type Source[T any] interface {
	Next() (T, bool)
}

type sliceSource[T any] struct {
	s []T
}

func (s *sliceSource[T]) Next() (T, bool) {
	var zero T
	if len(s.s) == 0 {
		return zero, false
	}
	v := s.s[0]
	s.s = s.s[1:]
	return v, true
}

// Slice returns a Source that yields the elements of s in order.
//
func Slice[T any](s []T) Source[T] {
	return &sliceSource[T]{s}
}

// Collect drains src and returns the values read.
//
func Collect[T any](src Source[T]) []T {
	var r []T
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		r = append(r, v)
	}
	return r
}
