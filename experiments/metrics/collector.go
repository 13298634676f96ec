package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one root search.
type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	RootActions int
	MaxNodes    int
	MinNodes    int
	ChanceNodes int
	Leaves      int
	Clones      int
	BestValue   float64
}

// Nodes is the total number of nodes the search visited.
func (m SearchMetric) Nodes() int {
	return m.MaxNodes + m.MinNodes + m.ChanceNodes + m.Leaves
}

type MoveMetric struct {
	Turn    int
	Action  string
	Applied bool
	Value   float64 // heuristic of the live state after the turn
	SearchMetric
}

type GameMetric struct {
	Agent      string
	Seed       uint64
	Outcome    string
	Turns      int
	HomeNectar int
	Obstacles  int
	Flowers    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(depth, rootActions int)
	AddMax()
	AddMin()
	AddChance()
	AddLeaf()
	AddClone()
	SetBestValue(value float64)
	Complete() SearchMetric
}

type collector struct {
	depth       int
	rootActions int
	startTime   time.Time
	maxNodes    atomic.Int32
	minNodes    atomic.Int32
	chanceNodes atomic.Int32
	leaves      atomic.Int32
	clones      atomic.Int32
	bestValue   float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, rootActions int) {
	m.startTime = time.Now()
	m.depth = depth
	m.rootActions = rootActions
}

func (m *collector) AddMax() {
	m.maxNodes.Add(1)
}

func (m *collector) AddMin() {
	m.minNodes.Add(1)
}

func (m *collector) AddChance() {
	m.chanceNodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddClone() {
	m.clones.Add(1)
}

func (m *collector) SetBestValue(value float64) {
	m.bestValue = value
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		RootActions: m.rootActions,
		MaxNodes:    int(m.maxNodes.Load()),
		MinNodes:    int(m.minNodes.Load()),
		ChanceNodes: int(m.chanceNodes.Load()),
		Leaves:      int(m.leaves.Load()),
		Clones:      int(m.clones.Load()),
		BestValue:   m.bestValue,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, rootActions int) {}
func (m *dummyCollector) AddMax()                      {}
func (m *dummyCollector) AddMin()                      {}
func (m *dummyCollector) AddChance()                   {}
func (m *dummyCollector) AddLeaf()                     {}
func (m *dummyCollector) AddClone()                    {}
func (m *dummyCollector) SetBestValue(value float64)   {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
