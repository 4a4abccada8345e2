package lexer

type nodeList map[rune]*node

// A node is a node in the token search tree of a language.
//
type node struct {
	c nodeList // child nodes
	s StateFn
}

// match returns the child node that matches the given rune.
//
func (n *node) match(r rune) *node {
	return n.c[r]
}

type filter struct {
	m func(r rune) bool
	s StateFn
}

// A Lang represents the tokens (terminals) used in a language. It is read-only
// once built and can be shared between lexers as long as its state functions
// do not hold state of their own.
//
type Lang struct {
	e   *node // exact matches
	b   []filter
	def StateFn
	eof StateFn
}

// NewLang returns a new, empty language. def is the state function used for
// input that matches no registered entry. It must not be nil.
//
func NewLang(def StateFn) *Lang {
	if def == nil {
		panic("no default state function provided")
	}
	return &Lang{e: &node{c: make(nodeList)}, def: def}
}

// Init returns the language's initial state function. Upon reaching the end of
// input, it transitions to the state registered with OnEOF, or calls
// State.Done if none was registered.
//
func (lang *Lang) Init() StateFn {
	return lang.doMatch
}

func (lang *Lang) doMatch(s *State) StateFn {
	var match *node
	var i, mi int

	r := s.Next()
	s.StartToken(s.Offset())
	if r == EOF {
		if lang.eof != nil {
			return lang.eof
		}
		return s.Done()
	}
	first := r

	for n := lang.e.match(r); n != nil; n = n.match(r) {
		if n.s != nil {
			mi = i
			match = n
		}
		if len(n.c) == 0 {
			// avoid unnecessary Next() / Backup() steps
			break
		}
		i++
		if r = s.Next(); r == EOF {
			break
		}
	}

	if match != nil {
		for ; i > mi; i-- {
			s.Backup()
		}
		return match.s
	}

	for ; i > 0; i-- {
		s.Backup()
	}
	for k := range lang.b {
		if lang.b[k].m(first) {
			return lang.b[k].s
		}
	}
	return lang.def
}

// Match registers the state f for input starting with the string s.
// When in its initial state, if the input matches s, the lexer switches its
// state to f with the last rune of s as the current rune. Longer matches take
// precedence over shorter ones.
//
// Match panics if s is empty, longer than BackupBufferSize-1 runes, or already
// registered.
//
func (lang *Lang) Match(s string, f StateFn) {
	if s == "" {
		panic("empty match string")
	}
	n := lang.e
	cnt := 0
	for _, r := range s {
		i, ok := n.c[r]
		if !ok {
			i = &node{c: make(nodeList)}
			n.c[r] = i
		}
		n = i
		cnt++
	}
	if cnt >= BackupBufferSize {
		panic("match string too long")
	}
	if n.s != nil {
		panic("token registered twice")
	}
	n.s = f
}

// MatchAny registers the state f for input starting with any of the runes in
// the string s.
//
func (lang *Lang) MatchAny(s string, f StateFn) {
	c := lang.e.c
	for _, r := range s {
		if n := c[r]; n != nil {
			if n.s != nil {
				panic("token registered twice")
			}
			n.s = f
		} else {
			c[r] = &node{c: make(nodeList), s: f}
		}
	}
}

// MatchFn registers the state f for input where matchFn returns true for the
// first rune in a token. Predicates are checked in registration order, after
// exact matches.
//
func (lang *Lang) MatchFn(matchFn func(r rune) bool, f StateFn) {
	lang.b = append(lang.b, filter{m: matchFn, s: f})
}

// OnEOF registers the state entered at the end of input. f must end with a call
// to State.Done or State.Fail.
//
func (lang *Lang) OnEOF(f StateFn) {
	lang.eof = f
}
