package engine

// DefaultRequestWindow is the default request-log window size: minutes
// per day.
const DefaultRequestWindow = 1440

// requestEntry is one logged AddFindRequest outcome.
type requestEntry struct {
	timestamp   uint64
	resultCount int
}

// RequestQueue is a sliding-window log over the last L requests made
// against a single Engine, tracking how many of them returned no results.
// It is owned by one RequestQueue instance and is not safe for concurrent
// use.
type RequestQueue struct {
	engine *Engine
	window uint64

	clock         uint64
	entries       []requestEntry
	noResultCount int
}

// NewRequestQueue builds a RequestQueue over engine with the reference
// window size (1440).
func NewRequestQueue(engine *Engine) *RequestQueue {
	return NewRequestQueueWithWindow(engine, DefaultRequestWindow)
}

// NewRequestQueueWithWindow builds a RequestQueue with an explicit window
// size, for callers that want something other than the 1440-entry default.
func NewRequestQueueWithWindow(engine *Engine, window int) *RequestQueue {
	if window < 1 {
		window = DefaultRequestWindow
	}
	return &RequestQueue{engine: engine, window: uint64(window)}
}

// AddFindRequest runs engine.FindTopDocuments(rawQuery) and logs the
// result count against the sliding window.
func (q *RequestQueue) AddFindRequest(rawQuery string) ([]Document, error) {
	docs, err := q.engine.FindTopDocuments(rawQuery)
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// AddFindRequestStatus is AddFindRequest with an explicit status filter.
func (q *RequestQueue) AddFindRequestStatus(rawQuery string, status Status) ([]Document, error) {
	docs, err := q.engine.FindTopDocumentsStatus(rawQuery, status)
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// AddFindRequestFilter is AddFindRequest with an arbitrary predicate.
func (q *RequestQueue) AddFindRequestFilter(rawQuery string, filter Filter) ([]Document, error) {
	docs, err := q.engine.FindTopDocumentsFilter(rawQuery, filter)
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// AddFindRequestPolicy is AddFindRequestFilter with an explicit execution
// policy: Sequential runs on the calling goroutine, Parallel fans the
// plus-term accumulation out across workers.
func (q *RequestQueue) AddFindRequestPolicy(rawQuery string, filter Filter, policy Policy, workers int) ([]Document, error) {
	var (
		docs []Document
		err  error
	)
	if policy == Parallel {
		docs, err = q.engine.FindTopDocumentsParallel(rawQuery, filter, workers)
	} else {
		docs, err = q.engine.FindTopDocumentsFilter(rawQuery, filter)
	}
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// GetNoResultRequests returns the number of requests in the current
// window whose result set was empty.
func (q *RequestQueue) GetNoResultRequests() int {
	return q.noResultCount
}

// record advances the logical clock by one, evicts any entry that has
// fallen out of the window, and appends the new entry.
func (q *RequestQueue) record(resultCount int) {
	q.clock++
	for len(q.entries) > 0 && q.clock-q.entries[0].timestamp >= q.window {
		front := q.entries[0]
		q.entries = q.entries[1:]
		if front.resultCount == 0 {
			q.noResultCount--
		}
	}

	q.entries = append(q.entries, requestEntry{timestamp: q.clock, resultCount: resultCount})
	if resultCount == 0 {
		q.noResultCount++
	}
}
