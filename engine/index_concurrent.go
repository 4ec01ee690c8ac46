package engine

import (
	"math"
	"sync"
)

// DefaultShardCount is the default shard and worker count for the parallel
// scorer.
const DefaultShardCount = 8

// Policy selects between the sequential and parallel evaluation strategies
// for a query. RequestQueue.AddFindRequestPolicy takes one to choose
// between FindTopDocumentsFilter and FindTopDocumentsParallel per call.
type Policy int

const (
	Sequential Policy = iota
	Parallel
)

// shard is one lock-protected sub-map of the sharded accumulator, keyed by
// documentId. Each lock scope is a single map update, or one shard's copy
// in buildOrdinaryMap.
type shard struct {
	mu   sync.Mutex
	data map[int]float64
}

// shardedAccumulator is a fixed-width array of lock-protected sub-maps
// used to compute per-document relevance in parallel. A document's
// contributions always land in the same shard (id mod len(shards)), so
// correctness requires only that each id's updates are serialized, not
// that the whole accumulator is. It is a transient resource local to one
// parallel query.
type shardedAccumulator struct {
	shards []*shard
}

func newShardedAccumulator(shardCount int) *shardedAccumulator {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{data: make(map[int]float64)}
	}
	return &shardedAccumulator{shards: shards}
}

func (a *shardedAccumulator) bucketFor(id int) *shard {
	return a.shards[id%len(a.shards)]
}

// add accumulates value into id's bucket under that bucket's lock.
func (a *shardedAccumulator) add(id int, value float64) {
	b := a.bucketFor(id)
	b.mu.Lock()
	b.data[id] += value
	b.mu.Unlock()
}

// remove deletes id from its bucket, used by the minus-term pass.
func (a *shardedAccumulator) remove(id int) {
	b := a.bucketFor(id)
	b.mu.Lock()
	delete(b.data, id)
	b.mu.Unlock()
}

// buildOrdinaryMap concatenates every shard into a single map. Called only
// after all workers and the minus-term pass have completed.
func (a *shardedAccumulator) buildOrdinaryMap() map[int]float64 {
	out := make(map[int]float64)
	for _, b := range a.shards {
		b.mu.Lock()
		for id, rel := range b.data {
			out[id] = rel
		}
		b.mu.Unlock()
	}
	return out
}

// FindTopDocumentsParallel behaves exactly like FindTopDocumentsFilter but
// partitions the plus-term accumulation across a fixed pool of workers
// backed by a shardedAccumulator. The intra-shard enumeration order is
// unobservable; the final result is ordered by the same comparator as the
// sequential path.
func (e *Engine) FindTopDocumentsParallel(rawQuery string, filter Filter, workers int) ([]Document, error) {
	q, err := parseQuery(rawQuery, e.stopWords)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = DefaultShardCount
	}

	relevance := e.accumulateParallel(q, filter, workers)
	return e.rank(relevance), nil
}

func (e *Engine) accumulateParallel(q query, filter Filter, workers int) map[int]float64 {
	if len(q.plusTerms) == 0 {
		return nil
	}

	acc := newShardedAccumulator(workers)
	n := e.GetDocumentCount()

	partitions := partitionStrings(q.plusTerms, workers)
	var wg sync.WaitGroup
	for _, part := range partitions {
		if len(part) == 0 {
			continue
		}
		wg.Add(1)
		go func(terms []string) {
			defer wg.Done()
			for _, term := range terms {
				bucket, ok := e.index[term]
				if !ok || n == 0 {
					continue
				}
				idf := math.Log(float64(n) / float64(len(bucket)))
				for id, tf := range bucket {
					rec := e.records[id]
					if filter(id, rec.status, rec.averageRating) {
						acc.add(id, idf*tf)
					}
				}
			}
		}(part)
	}
	wg.Wait()

	for _, term := range q.minusTerms {
		for id := range e.index[term] {
			acc.remove(id)
		}
	}

	return acc.buildOrdinaryMap()
}

// partitionStrings splits items into at most n contiguous, roughly
// equal-sized slices, used to hand each worker a partition of plusTerms.
func partitionStrings(items []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}
	if n == 0 {
		return nil
	}
	parts := make([][]string, n)
	base := len(items) / n
	rem := len(items) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		parts[i] = items[start : start+size]
		start += size
	}
	return parts
}
