package lexer

type options struct {
	queueSize int
	onError   func(error)
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// QueueSize sets the initial capacity of the lexeme queue. The queue grows as
// needed; this only saves reallocations for languages whose state functions
// emit many lexemes before returning. Sizes are rounded up to a power of two.
//
func QueueSize(n int) Option {
	return func(o *options) {
		sz := 1
		for sz < n {
			sz <<= 1
		}
		o.queueSize = sz
	}
}

// OnError defines a callback that is called once with the lexical error that
// stops the lexer, at the time it is detected. It is not called on normal
// completion.
//
func OnError(f func(err error)) Option {
	return func(o *options) {
		o.onError = f
	}
}
