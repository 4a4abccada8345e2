package lexer_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
)

func BenchmarkState_Next(b *testing.B) {
	l := lexer.New(token.NewFile("", strings.Repeat("a", b.N+1)), nil)
	s := (*lexer.State)(l)

	rng := rand.New(rand.NewSource(123456))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if rng.Intn(3) == 0 {
			s.Backup()
		} else {
			s.Next()
		}
	}
}
