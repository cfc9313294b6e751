package solver

import (
	"sync"

	"github.com/solb/cs4gamesolver/game"
)

// maxBuckets caps the table before it is thrown away wholesale; the games at
// hand stay far below it.
const maxBuckets = 1 << 20

type flag int8

const (
	flagExact flag = iota
	flagLower
	flagUpper
)

type entry struct {
	state game.State
	depth int
	value float64
	flag  flag
}

// table is a transposition table bucketed by state hash. Colliding states
// share a bucket and are told apart by full equality.
type table struct {
	mu      sync.Mutex
	buckets map[game.StateHash][]entry
}

func newTable() *table {
	return &table{buckets: make(map[game.StateHash][]entry)}
}

// probe returns a cached result searched at least as deep as requested.
func (t *table) probe(state game.State, depth int) (entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.buckets[state.Hash()] {
		if e.depth >= depth && e.state.Equal(state) {
			return e, true
		}
	}
	return entry{}, false
}

// store records a search result, preferring deeper results and exact values
// over bounds at equal depth.
func (t *table) store(state game.State, depth int, value float64, f flag) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.buckets) > maxBuckets {
		t.buckets = make(map[game.StateHash][]entry, 1<<16)
	}

	hash := state.Hash()
	bucket := t.buckets[hash]
	for i := range bucket {
		if bucket[i].state.Equal(state) {
			replace := depth > bucket[i].depth
			if depth == bucket[i].depth && f == flagExact && bucket[i].flag != flagExact {
				replace = true
			}
			if replace {
				bucket[i] = entry{state: state, depth: depth, value: value, flag: f}
			}
			return
		}
	}
	t.buckets[hash] = append(bucket, entry{state: state, depth: depth, value: value, flag: f})
}
