package pattern

import "github.com/db47h/lexkit/token"

// window is a fixed capacity FIFO ring buffer.
type window[T any] struct {
	items []T
	head  int
	count int
}

func (w *window[T]) push(v T) {
	w.items[(w.head+w.count)%len(w.items)] = v
	w.count++
}

// pop removes the oldest element. Callers must check that w.count > 0
// beforehand.
func (w *window[T]) pop() T {
	var zero T
	v := w.items[w.head]
	w.items[w.head] = zero
	w.head = (w.head + 1) % len(w.items)
	w.count--
	return v
}

func (w *window[T]) at(i int) T {
	return w.items[(w.head+i)%len(w.items)]
}

// drain empties the window into a newly allocated slice.
func (w *window[T]) drain() []T {
	run := make([]T, w.count)
	for i := range run {
		run[i] = w.pop()
	}
	return run
}

// A Reducer maps a matched run to its replacement elements. The run slice is
// owned by the Reducer. The returned slice is only read.
//
type Reducer[T any] func(run []T) []T

// A Processor is a lazy token.Source that replaces every non-overlapping,
// leftmost run of its input matched by a pattern with the output of a Reducer.
// Elements that are not part of a matched run are passed through unchanged and
// in order.
//
// A Processor pulls from its source only as needed to produce the next element
// and buffers at most len(pattern)+1 elements. It is single pass and cannot be
// rewound.
//
type Processor[T Element[T]] struct {
	pat      Pattern[T]
	reduce   Reducer[T]
	src      token.Source[T]
	buf      window[T]
	out      []T
	draining bool
}

// Process returns a Processor applying reduce to every run of src matched by p.
//
// With an empty pattern, no run is ever matched and the Processor yields the
// elements of src unchanged.
//
func Process[T Element[T]](p Pattern[T], reduce Reducer[T], src token.Source[T]) *Processor[T] {
	return &Processor[T]{
		pat:    p,
		reduce: reduce,
		src:    src,
		buf:    window[T]{items: make([]T, len(p)+1)},
	}
}

// Group returns a Processor that wraps every run of src matched by p into a
// single token.Group lexeme labeled label.
//
func Group(label string, p Pattern[token.Lexeme], src token.Source[token.Lexeme]) *Processor[token.Lexeme] {
	return Process[token.Lexeme](p, func(run []token.Lexeme) []token.Lexeme {
		return []token.Lexeme{token.NewGroup(label, run)}
	}, src)
}

// Next returns the next output element. The boolean is false once the source
// is exhausted and all buffered elements have been returned.
//
func (p *Processor[T]) Next() (T, bool) {
	var zero T
	n := len(p.pat)
	for {
		if len(p.out) > 0 {
			v := p.out[0]
			p.out = p.out[1:]
			return v, true
		}
		if p.draining {
			if p.buf.count > 0 {
				return p.buf.pop(), true
			}
			return zero, false
		}
		// a full window is always tested before pulling more input
		if n > 0 && p.buf.count == n {
			if p.matchWindow() {
				p.out = p.reduce(p.buf.drain())
				continue
			}
			return p.buf.pop(), true
		}
		v, ok := p.src.Next()
		if !ok {
			p.draining = true
			continue
		}
		p.buf.push(v)
		if p.buf.count > n {
			return p.buf.pop(), true
		}
	}
}

func (p *Processor[T]) matchWindow() bool {
	for i := range p.pat {
		if !p.pat[i].Match(p.buf.at(i)) {
			return false
		}
	}
	return true
}

// Err returns the error of the underlying source if it has an Err method, nil
// otherwise. This lets error reporting sources like lexkit.Scanner be chained
// through several passes.
//
func (p *Processor[T]) Err() error {
	if es, ok := p.src.(interface{ Err() error }); ok {
		return es.Err()
	}
	return nil
}
