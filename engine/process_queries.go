package engine

import "sync"

// QueryResult pairs one ProcessQueries query with its outcome. Err is set
// when the query itself failed to parse (e.g. a malformed minus term);
// Documents is nil in that case.
type QueryResult struct {
	Documents []Document
	Err       error
}

// ProcessQueries evaluates each of queries against e.FindTopDocuments in
// parallel, using a fixed worker pool, and returns one QueryResult per
// query in the same order: the i-th query maps to the i-th result.
func (e *Engine) ProcessQueries(queries []string) []QueryResult {
	return e.processQueriesWithWorkers(queries, DefaultShardCount)
}

func (e *Engine) processQueriesWithWorkers(queries []string, workers int) []QueryResult {
	results := make([]QueryResult, len(queries))
	if len(queries) == 0 {
		return results
	}
	if workers < 1 {
		workers = DefaultShardCount
	}
	if workers > len(queries) {
		workers = len(queries)
	}

	indices := make(chan int, len(queries))
	for i := range queries {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				docs, err := e.FindTopDocuments(queries[i])
				results[i] = QueryResult{Documents: docs, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}

// ProcessQueriesJoined concatenates ProcessQueries' per-query document
// lists into a single slice, in query order, and collects any per-query
// errors in a parallel slice of the same length as queries (nil entries
// for queries that succeeded).
func (e *Engine) ProcessQueriesJoined(queries []string) ([]Document, []error) {
	perQuery := e.ProcessQueries(queries)
	errs := make([]error, len(queries))
	joined := make([]Document, 0, len(queries)*MaxResultDocumentCount)
	for i, r := range perQuery {
		errs[i] = r.Err
		joined = append(joined, r.Documents...)
	}
	return joined, errs
}
