package bktree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xrash/smetrics"
)

func TestLevenshtein(t *testing.T) {
	dataSet := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "some", 4},
		{"some", "", 4},
		{"kitten", "sitting", 3},
		{"sitting", "kitten", 3},
		{"book", "book", 0},
		{"book", "boo", 1},
		{"boo", "boot", 1},
		{"abc", "xyz", 3},
		{"flaw", "lawn", 2},
		{"gumbo", "gambol", 2},
	}

	for _, d := range dataSet {
		assert.Equal(t, d.expected, Levenshtein(d.a, d.b), "%q vs %q", d.a, d.b)
	}
}

func TestLevenshteinProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a := randomWord(rnd, 12)
		b := randomWord(rnd, 12)

		assert.Equal(t, 0, Levenshtein(a, a))
		assert.Equal(t, Levenshtein(a, b), Levenshtein(b, a))
		assert.Equal(t, len(b), Levenshtein("", b))
		assert.LessOrEqual(t, Levenshtein(a, b), max(len(a), len(b)))
	}
}

func TestLevenshteinAgainstWagnerFischer(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		a := randomWord(rnd, 16)
		b := randomWord(rnd, 16)

		assert.Equal(t, smetrics.WagnerFischer(a, b, 1, 1, 1), Levenshtein(a, b), "%q vs %q", a, b)
	}
}

func TestLevenshteinRunes(t *testing.T) {
	assert.Equal(t, 1, Levenshtein("über", "uber"))
	assert.Equal(t, 2, Levenshtein("côté", "cote"))
}
