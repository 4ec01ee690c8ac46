// Package genload generates random dictionaries and queries for exercising
// the search engine under load in benchmarks. It carries no search
// semantics of its own: nothing here participates in indexing, scoring,
// or ranking.
package genload

import (
	"math/rand"
	"sort"
	"strings"
)

// Generator produces random lowercase words, dictionaries, and plus/minus
// queries drawn from a dictionary. It is not safe for concurrent use by
// multiple goroutines sharing the same *rand.Rand.
type Generator struct {
	rng *rand.Rand
}

// New builds a Generator seeded with seed, so benchmark runs are
// reproducible across comparisons between the sequential and parallel
// scorers.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Word returns a random lowercase word of length in [1, maxLength].
func (g *Generator) Word(maxLength int) string {
	if maxLength < 1 {
		maxLength = 1
	}
	length := 1 + g.rng.Intn(maxLength)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[g.rng.Intn(len(alphabet))])
	}
	return b.String()
}

// Dictionary returns wordCount distinct words of length up to maxLength,
// sorted for reproducible benchmark setup.
func (g *Generator) Dictionary(wordCount, maxLength int) []string {
	seen := make(map[string]struct{}, wordCount)
	words := make([]string, 0, wordCount)
	for len(words) < wordCount {
		w := g.Word(maxLength)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Query builds one space-separated query of up to maxWordCount terms
// drawn from dictionary, each becoming a minus term with probability
// minusProb.
func (g *Generator) Query(dictionary []string, maxWordCount int, minusProb float64) string {
	if len(dictionary) == 0 || maxWordCount < 1 {
		return ""
	}
	wordCount := 1 + g.rng.Intn(maxWordCount)
	terms := make([]string, 0, wordCount)
	for i := 0; i < wordCount; i++ {
		term := dictionary[g.rng.Intn(len(dictionary))]
		if g.rng.Float64() < minusProb {
			term = "-" + term
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, " ")
}

// Queries builds queryCount independent queries via Query.
func (g *Generator) Queries(dictionary []string, queryCount, maxWordCount int) []string {
	queries := make([]string, queryCount)
	for i := range queries {
		queries[i] = g.Query(dictionary, maxWordCount, 0)
	}
	return queries
}
