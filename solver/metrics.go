package solver

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int
	TableHits  int
	LeafEvals  int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddTableHit()
	AddLeafEval()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	tableHits  atomic.Int64
	leafEvals  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines, depth int) {
	c.startTime = time.Now()
	c.goroutines = goroutines
	c.depth = depth
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddTableHit() {
	c.tableHits.Add(1)
}

func (c *collector) AddLeafEval() {
	c.leafEvals.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: c.goroutines,
		Depth:      c.depth,
		Duration:   time.Since(c.startTime),
		Nodes:      int(c.nodes.Load()),
		TableHits:  int(c.tableHits.Load()),
		LeafEvals:  int(c.leafEvals.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for when search metrics are
// not wanted.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int, int)         {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddTableHit()           {}
func (dummyCollector) AddLeafEval()           {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
