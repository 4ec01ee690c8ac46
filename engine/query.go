package engine

import "sort"

// query holds the deduplicated, sorted plus/minus term sets produced by
// parseQuery. Sorting gives a stable iteration order for the parallel
// scorer's partitioning and makes the sequential and parallel paths easy
// to compare in tests.
type query struct {
	plusTerms  []string
	minusTerms []string
}

// queryWord is the classification of a single raw query token.
type queryWord struct {
	term    string
	isMinus bool
	isStop  bool
}

// parseQueryWord classifies one whitespace-delimited token of the engine's
// query grammar: a leading "-" marks a minus candidate, unless the token
// is malformed (bare "-", "--" prefix, or a space right after the "-",
// which can't occur within a single token but is kept here for parity with
// the two-character prefix checks below).
func parseQueryWord(word string, stopWords map[string]struct{}) (queryWord, error) {
	if len(word) == 0 {
		return queryWord{}, nil
	}
	if word[0] == '-' {
		if len(word) == 1 || word[1] == '-' || word[1] == ' ' {
			return queryWord{}, ErrMalformedMinus
		}
	}
	if !checkWord(word) {
		return queryWord{}, ErrInvalidCharacter
	}

	isMinus := false
	term := word
	if word[0] == '-' {
		isMinus = true
		term = word[1:]
	}

	_, isStop := stopWords[term]
	return queryWord{term: term, isMinus: isMinus, isStop: isStop}, nil
}

// parseQuery tokenises raw query text and classifies each token, dropping
// stop words and returning the deduplicated, sorted plus and minus term
// lists. An empty query (no tokens at all) yields an empty query rather
// than an error.
func parseQuery(raw string, stopWords map[string]struct{}) (query, error) {
	var q query
	plusSet := make(map[string]struct{})
	minusSet := make(map[string]struct{})

	for _, word := range splitIntoWords(raw) {
		qw, err := parseQueryWord(word, stopWords)
		if err != nil {
			return query{}, err
		}
		if qw.isStop {
			continue
		}
		if qw.isMinus {
			minusSet[qw.term] = struct{}{}
		} else {
			plusSet[qw.term] = struct{}{}
		}
	}

	q.plusTerms = sortedKeys(plusSet)
	q.minusTerms = sortedKeys(minusSet)
	return q, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
