package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one search: its bounds, how much of the tree it
// actually expanded, and whether the node budget cut it short. A set
// BudgetExhausted flag is not an error; the returned action is simply the
// best of a partial search.
type SearchMetric struct {
	Horizon         int
	NodeBudget      int
	NodesExpanded   int
	LeavesScored    int
	BudgetExhausted bool
	// BestScore is the weighted evaluator score of the best node found.
	BestScore float64
	Duration  time.Duration
}

// DecisionRecord ties a search metric to the decision it produced.
type DecisionRecord struct {
	Step   int
	Action string
	SearchMetric
}

// Collector gathers search counters. Implementations must be safe for
// concurrent use: branch evaluation may run on several goroutines.
type Collector interface {
	Start(horizon, nodeBudget int)
	AddNode()
	AddLeaf()
	SetBudgetExhausted(value bool)
	SetBestScore(score float64)
	Complete() SearchMetric
}

type collector struct {
	horizon         int
	nodeBudget      int
	startTime       time.Time
	nodes           atomic.Int64
	leaves          atomic.Int64
	budgetExhausted atomic.Bool
	// bestScore is set once by the coordinating goroutine after workers
	// are joined, so it needs no atomics.
	bestScore float64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(horizon, nodeBudget int) {
	c.horizon = horizon
	c.nodeBudget = nodeBudget
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.budgetExhausted.Store(false)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) SetBudgetExhausted(value bool) {
	c.budgetExhausted.Store(value)
}

func (c *collector) SetBestScore(score float64) {
	c.bestScore = score
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Horizon:         c.horizon,
		NodeBudget:      c.nodeBudget,
		NodesExpanded:   int(c.nodes.Load()),
		LeavesScored:    int(c.leaves.Load()),
		BudgetExhausted: c.budgetExhausted.Load(),
		BestScore:       c.bestScore,
		Duration:        time.Since(c.startTime),
	}
}

type dummyCollector struct {
	horizon    int
	nodeBudget int
	exhausted  bool
	bestScore  float64
}

// NewDummyCollector keeps only the flags a caller must always be able to
// observe, skipping counter overhead when telemetry is off.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(horizon, nodeBudget int) {
	d.horizon = horizon
	d.nodeBudget = nodeBudget
	d.exhausted = false
}

func (d *dummyCollector) AddNode() {}

func (d *dummyCollector) AddLeaf() {}

func (d *dummyCollector) SetBudgetExhausted(value bool) {
	d.exhausted = value
}

func (d *dummyCollector) SetBestScore(score float64) {
	d.bestScore = score
}

func (d *dummyCollector) Complete() SearchMetric {
	return SearchMetric{
		Horizon:         d.horizon,
		NodeBudget:      d.nodeBudget,
		BudgetExhausted: d.exhausted,
		BestScore:       d.bestScore,
	}
}
