package engine

import (
	"fmt"
	"sort"
	"strings"
)

// RemoveDuplicates finds every document whose set of distinct terms
// (after stop-word removal) equals that of some lower-numbered document,
// removes them from e, and reports what it removed.
//
// Because e.IDs returns ascending ids, the first id seen for a given term
// set is always its class minimum; every later id in the same class is a
// duplicate and gets removed. removedIDs is sorted ascending; notices
// pairs one human-readable line per removed id, in the same order.
func RemoveDuplicates(e *Engine) (removedIDs []int, notices []string) {
	seenClass := make(map[string]int)

	for _, id := range e.IDs() {
		key := termSetKey(e.GetWordFrequencies(id))
		if _, exists := seenClass[key]; !exists {
			seenClass[key] = id
			continue
		}
		removedIDs = append(removedIDs, id)
	}

	for _, id := range removedIDs {
		e.RemoveDocument(id)
		notices = append(notices, fmt.Sprintf("Found duplicate document id %d", id))
	}

	return removedIDs, notices
}

// termSetKey builds a key for a document's duplicate class: the sorted,
// deduplicated term set, not the bag of term occurrences. Two documents
// that use the same words a different number of times are the same class.
func termSetKey(termFrequencies map[string]float64) string {
	terms := make([]string, 0, len(termFrequencies))
	for term := range termFrequencies {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return strings.Join(terms, "\x00")
}
