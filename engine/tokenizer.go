package engine

// splitIntoWords splits text on ASCII spaces into the ordered sequence of
// maximal non-space substrings. Empty runs between consecutive spaces are
// discarded. The input is treated as an opaque byte sequence; no control
// byte validation happens here, only at the call sites in document
// ingestion and query parsing.
func splitIntoWords(text string) []string {
	words := make([]string, 0, 8)
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// checkWord reports whether word contains no ASCII control byte (0-31).
func checkWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 32 {
			return false
		}
	}
	return true
}

// splitIntoWordsNoStop splits text into words, validates each for control
// bytes, and drops any word present in stopWords. It fails fast on the
// first invalid word, matching the all-or-nothing propagation policy of
// AddDocument: the caller must not have mutated state before calling this.
func splitIntoWordsNoStop(text string, stopWords map[string]struct{}) ([]string, error) {
	words := splitIntoWords(text)
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !checkWord(w) {
			return nil, ErrInvalidCharacter
		}
		if _, isStop := stopWords[w]; isStop {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}
