// Package mutator turns ranked words into password guesses by appending
// random digits and a punctuation character.
package mutator

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/wordharvest/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation is the ASCII punctuation set suffixes are drawn from.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// DigitCount is how many decimal digits follow the word.
const DigitCount = 4

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type Mutator struct {
	src        Source
	capitalize bool
	upper      cases.Caser
}

type Option func(*Mutator)

// WithSource injects the random source, typically a seeded one in tests.
func WithSource(src Source) Option {
	return func(m *Mutator) {
		if src != nil {
			m.src = src
		}
	}
}

// WithSeed makes the generated suffixes reproducible.
func WithSeed(seed int64) Option {
	return WithSource(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

// WithCapitalize upper-cases the first character of each word before the
// suffix is appended. Off by default.
func WithCapitalize(enabled bool) Option {
	return func(m *Mutator) {
		m.capitalize = enabled
	}
}

func New(opts ...Option) *Mutator {
	now := uint64(time.Now().UnixNano())
	m := &Mutator{
		src:   rand.New(rand.NewPCG(now, now>>1)),
		upper: cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mutate produces one candidate per ranked entry, in ranked order. Candidates
// are not deduplicated.
func (m *Mutator) Mutate(ranked []models.WordCount) []string {
	candidates := make([]string, 0, len(ranked))
	for _, wc := range ranked {
		candidates = append(candidates, m.MutateWord(wc.Word))
	}
	return candidates
}

// MutateWord appends DigitCount random digits and one punctuation character.
func (m *Mutator) MutateWord(word string) string {
	var b strings.Builder
	b.Grow(len(word) + DigitCount + 1)

	if m.capitalize {
		b.WriteString(m.capitalizeFirst(word))
	} else {
		b.WriteString(word)
	}
	for i := 0; i < DigitCount; i++ {
		b.WriteByte(byte('0' + m.src.IntN(10)))
	}
	b.WriteByte(Punctuation[m.src.IntN(len(Punctuation))])

	return b.String()
}

func (m *Mutator) capitalizeFirst(word string) string {
	if word == "" {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	return m.upper.String(word[:size]) + word[size:]
}
