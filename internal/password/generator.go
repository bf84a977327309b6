package password

import (
	"crypto/rand"
	"math/big"
)

// generation alphabet and length range
const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	alphabet   = lowerChars + upperChars + digitChars
)

// Generator produces Default-compliant random passwords using
// crypto/rand. The source is process-wide and never reseeded, so
// rapid successive calls stay independent.
type Generator struct{}

// NewGenerator creates a generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a random alphanumeric password of 1 to 15
// characters that satisfies the Default policy for username. It
// rejection-samples: draw a uniform length, fill with uniform
// alphabet characters, retry until the draw passes. A draw of any
// length passes with probability bounded away from zero, so the loop
// ends after a handful of iterations in practice.
func (g *Generator) Generate(username string) string {
	buf := make([]byte, 0, MaxDefaultLength)
	for {
		n := 1 + randIntn(MaxDefaultLength)
		buf = buf[:0]
		for i := 0; i < n; i++ {
			buf = append(buf, pickByte(alphabet))
		}
		if IsStrongDefault(username, string(buf)) {
			return string(buf)
		}
	}
}

// pickByte returns a random byte from a string.
func pickByte(s string) byte {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
