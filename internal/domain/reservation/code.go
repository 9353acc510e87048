package reservation

import (
	"crypto/rand"
	"math/big"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength is the size of a freshly generated confirmation code.
	CodeLength = 8
	// WideCodeLength is used after repeated collisions at the base length.
	WideCodeLength = 12
)

// CodeGenerator produces confirmation codes. Uniqueness is not guaranteed by
// the generator itself; the lifecycle manager regenerates on collision.
type CodeGenerator interface {
	Generate(length int) string
}

// RandomCodeGenerator draws uppercase alphanumeric codes from crypto/rand.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate(length int) string {
	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the process is in no state to
			// serve; fall back to the first symbol instead of panicking.
			code[i] = codeAlphabet[0]
			continue
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}
