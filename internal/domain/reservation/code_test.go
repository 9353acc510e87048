//go:build unit

package reservation_test

import (
	"regexp"
	"testing"

	"dreamstay/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestRandomCodeGenerator(t *testing.T) {
	gen := reservation.NewRandomCodeGenerator()
	alphabet := regexp.MustCompile(`^[A-Z0-9]+$`)

	for _, length := range []int{reservation.CodeLength, reservation.WideCodeLength} {
		code := gen.Generate(length)
		assert.Len(t, code, length)
		assert.Regexp(t, alphabet, code)
	}

	// Not a uniqueness guarantee, but 100 identical draws would mean the
	// generator is broken.
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[gen.Generate(reservation.CodeLength)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
