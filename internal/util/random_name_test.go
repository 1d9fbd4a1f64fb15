package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := GetRandomName()
	second := GetRandomName()

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a.Equal(first, GetRandomName(), "the same seed gives the same names")
	a.Equal(second, GetRandomName())

	parts := strings.SplitN(first, " ", 2)
	if a.Len(parts, 2) {
		a.Contains(adjectives, parts[0])
		a.Contains(nouns, parts[1])
	}
}
