package engine

import (
	"math"
	"sort"
)

// Filter decides whether a candidate document should be considered for a
// query, given its id, status, and average rating.
type Filter func(id int, status Status, rating int) bool

// Engine is the in-memory inverted index and document registry. It owns
// all index data; callers hold only document ids and receive copies or
// borrowed views of results. A single Engine is safe for concurrent
// read-only queries (FindTopDocuments, MatchDocument, ProcessQueries) but
// not for concurrent AddDocument/RemoveDocument against a single instance;
// callers that mutate while querying must serialize those calls themselves.
type Engine struct {
	stopWords map[string]struct{}

	ids     []int // ascending, kept in sync with records
	records map[int]*record

	// index maps term -> documentId -> term frequency. Every
	// (documentId, term) pair appears symmetrically here and in
	// records[documentId].termFrequencies.
	index map[string]map[int]float64
}

// New constructs an Engine whose stop words are the whitespace-delimited
// terms of stopWordsText.
func New(stopWordsText string) (*Engine, error) {
	return NewFromWords(splitIntoWords(stopWordsText))
}

// NewFromWords constructs an Engine from an explicit stop-word list. Each
// word is validated for control bytes eagerly; a single bad word aborts
// construction.
func NewFromWords(stopWords []string) (*Engine, error) {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		if !checkWord(w) {
			return nil, ErrInvalidCharacter
		}
		set[w] = struct{}{}
	}
	return &Engine{
		stopWords: set,
		records:   make(map[int]*record),
		index:     make(map[string]map[int]float64),
	}, nil
}

// GetDocumentCount returns the number of currently registered documents.
func (e *Engine) GetDocumentCount() int {
	return len(e.ids)
}

// IDs returns the known document ids in ascending order. The returned
// slice is a copy; mutating it does not affect the engine.
func (e *Engine) IDs() []int {
	out := make([]int, len(e.ids))
	copy(out, e.ids)
	return out
}

// GetWordFrequencies returns a borrowed view of the term-frequency map for
// id, or an empty map if id is unknown. It never fails.
func (e *Engine) GetWordFrequencies(id int) map[string]float64 {
	rec, ok := e.records[id]
	if !ok {
		return map[string]float64{}
	}
	return rec.termFrequencies
}

// Status returns the status recorded for id and whether id is known.
func (e *Engine) Status(id int) (Status, bool) {
	rec, ok := e.records[id]
	if !ok {
		return 0, false
	}
	return rec.status, true
}

// Rating returns the average rating recorded for id and whether id is known.
func (e *Engine) Rating(id int) (int, bool) {
	rec, ok := e.records[id]
	if !ok {
		return 0, false
	}
	return rec.averageRating, true
}

// AddDocument registers a new document under id. The text is tokenised on
// whitespace, stop words are dropped, and the remaining terms' frequencies
// are recorded in both the document's own term-frequency map and the
// inverted index. The operation is all-or-nothing: a validation failure
// leaves the engine state unchanged.
func (e *Engine) AddDocument(id int, text string, status Status, ratings []int) error {
	if _, exists := e.records[id]; exists {
		return ErrDuplicateID
	}
	if id < 0 {
		return ErrNegativeID
	}

	words, err := splitIntoWordsNoStop(text, e.stopWords)
	if err != nil {
		return err
	}

	n := len(words)
	counts := make(map[string]int, n)
	for _, w := range words {
		counts[w]++
	}

	termFrequencies := make(map[string]float64, len(counts))
	for term, k := range counts {
		tf := float64(k) / float64(n)
		termFrequencies[term] = tf

		bucket, ok := e.index[term]
		if !ok {
			bucket = make(map[int]float64)
			e.index[term] = bucket
		}
		bucket[id] = tf
	}

	e.records[id] = &record{
		status:          status,
		averageRating:   computeAverageRating(ratings),
		termFrequencies: termFrequencies,
	}
	e.insertID(id)
	return nil
}

// insertID keeps e.ids sorted ascending; ids are appended and then bubbled
// into place since AddDocument is called with arbitrary, not necessarily
// increasing, ids.
func (e *Engine) insertID(id int) {
	i := sort.SearchInts(e.ids, id)
	e.ids = append(e.ids, 0)
	copy(e.ids[i+1:], e.ids[i:])
	e.ids[i] = id
}

// RemoveDocument deletes id from the registry and from every index entry
// it contributed to. It is a no-op on an unknown id.
func (e *Engine) RemoveDocument(id int) {
	rec, ok := e.records[id]
	if !ok {
		return
	}
	for term := range rec.termFrequencies {
		bucket := e.index[term]
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(e.index, term)
		}
	}
	delete(e.records, id)

	i := sort.SearchInts(e.ids, id)
	if i < len(e.ids) && e.ids[i] == id {
		e.ids = append(e.ids[:i], e.ids[i+1:]...)
	}
}

// FindTopDocuments ranks documents matching rawQuery against the default
// filter (status == Actual).
func (e *Engine) FindTopDocuments(rawQuery string) ([]Document, error) {
	return e.FindTopDocumentsFilter(rawQuery, func(_ int, status Status, _ int) bool {
		return status == Actual
	})
}

// FindTopDocumentsStatus ranks documents matching rawQuery whose status
// equals status.
func (e *Engine) FindTopDocumentsStatus(rawQuery string, status Status) ([]Document, error) {
	return e.FindTopDocumentsFilter(rawQuery, func(_ int, s Status, _ int) bool {
		return s == status
	})
}

// FindTopDocumentsFilter ranks documents matching rawQuery against an
// arbitrary predicate, sequentially.
func (e *Engine) FindTopDocumentsFilter(rawQuery string, filter Filter) ([]Document, error) {
	q, err := parseQuery(rawQuery, e.stopWords)
	if err != nil {
		return nil, err
	}
	relevance := e.accumulateSequential(q, filter)
	return e.rank(relevance), nil
}

// accumulateSequential implements plus-term accumulation followed by
// minus-term removal, over a single map. A document's relevance is the sum
// over plus terms of ln(N/df) * tf, where N is the document count and df
// the number of documents containing the term.
func (e *Engine) accumulateSequential(q query, filter Filter) map[int]float64 {
	relevance := make(map[int]float64)
	n := e.GetDocumentCount()

	for _, term := range q.plusTerms {
		bucket, ok := e.index[term]
		if !ok || n == 0 {
			continue
		}
		idf := math.Log(float64(n) / float64(len(bucket)))
		for id, tf := range bucket {
			rec := e.records[id]
			if filter(id, rec.status, rec.averageRating) {
				relevance[id] += idf * tf
			}
		}
	}

	for _, term := range q.minusTerms {
		for id := range e.index[term] {
			delete(relevance, id)
		}
	}

	return relevance
}

// rank turns a documentId -> relevance map into the sorted, top-K result
// list: descending relevance, ties within Epsilon broken by descending
// rating.
func (e *Engine) rank(relevance map[int]float64) []Document {
	if len(relevance) == 0 {
		return nil
	}
	docs := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		rec := e.records[id]
		docs = append(docs, Document{ID: id, Relevance: rel, Rating: rec.averageRating})
	}

	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if math.Abs(a.Relevance-b.Relevance) < Epsilon {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})

	if len(docs) > MaxResultDocumentCount {
		docs = docs[:MaxResultDocumentCount]
	}
	return docs
}
