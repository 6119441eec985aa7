package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration       time.Duration
	Episodes       int
	TerminalLeaves int
	RootVisits     int
	Exploration    float64
	Evaluator      string
	IsTreeReused   bool
	IsResolved     bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	Scores         [2]int // Starting player first
	Seed           uint64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(exploration float64, evaluator string)
	SetTreeReused(value bool)
	AddEpisode()
	AddTerminalLeaf()
	Complete(rootVisits int, resolved bool) SearchMetric
}

type collector struct {
	exploration    float64
	evaluator      string
	startTime      time.Time
	episodes       atomic.Int32
	terminalLeaves atomic.Int32
	isTreeReused   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(exploration float64, evaluator string) {
	m.startTime = time.Now()
	m.exploration = exploration
	m.evaluator = evaluator
	m.episodes.Store(0)
	m.terminalLeaves.Store(0)
	m.isTreeReused.Store(false)
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused.Store(value)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) Complete(rootVisits int, resolved bool) SearchMetric {
	return SearchMetric{
		Duration:       time.Since(m.startTime),
		Episodes:       int(m.episodes.Load()),
		TerminalLeaves: int(m.terminalLeaves.Load()),
		RootVisits:     rootVisits,
		Exploration:    m.exploration,
		Evaluator:      m.evaluator,
		IsTreeReused:   m.isTreeReused.Load(),
		IsResolved:     resolved,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(exploration float64, evaluator string) {}
func (m *dummyCollector) SetTreeReused(value bool)                   {}
func (m *dummyCollector) AddEpisode()                                {}
func (m *dummyCollector) AddTerminalLeaf()                           {}
func (m *dummyCollector) Complete(rootVisits int, resolved bool) SearchMetric {
	return SearchMetric{}
}
