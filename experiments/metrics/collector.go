package metrics

import "time"

// MoveMetric describes one placement during an episode.
type MoveMetric struct {
	Step      int
	Player    string
	Column    int
	TableSize int // Learner's table size after the move, 0 for baselines
}

// UpdateMetric describes one learning step.
type UpdateMetric struct {
	Seq     int
	Player  string
	Reward  float64
	TDError float64
}

// EpisodeMetric summarizes one full episode.
type EpisodeMetric struct {
	StartingPlayer string
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Moves          []MoveMetric
	Updates        []UpdateMetric
}

// AgentConfig identifies an agent's hyperparameters in the run records.
type AgentConfig struct {
	ID      int
	Name    string
	Alpha   float64
	Gamma   float64
	Epsilon float64
}

type Collector interface {
	Start(startingPlayer string)
	AddMove(player string, column, tableSize int)
	AddUpdate(player string, reward, tdError float64)
	Complete(outcome string) EpisodeMetric
}

// collector accumulates metrics for a single episode. Episodes run on
// one control flow, so no synchronization is needed.
type collector struct {
	startingPlayer string
	startTime      time.Time
	moves          []MoveMetric
	updates        []UpdateMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer string) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
	m.moves = nil
	m.updates = nil
}

func (m *collector) AddMove(player string, column, tableSize int) {
	m.moves = append(m.moves, MoveMetric{
		Step:      len(m.moves) + 1,
		Player:    player,
		Column:    column,
		TableSize: tableSize,
	})
}

func (m *collector) AddUpdate(player string, reward, tdError float64) {
	m.updates = append(m.updates, UpdateMetric{
		Seq:     len(m.updates) + 1,
		Player:  player,
		Reward:  reward,
		TDError: tdError,
	})
}

func (m *collector) Complete(outcome string) EpisodeMetric {
	end := time.Now()
	return EpisodeMetric{
		StartingPlayer: m.startingPlayer,
		Outcome:        outcome,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
		Moves:          m.moves,
		Updates:        m.updates,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer string)                      {}
func (m *dummyCollector) AddMove(player string, column, tableSize int)     {}
func (m *dummyCollector) AddUpdate(player string, reward, tdError float64) {}
func (m *dummyCollector) Complete(outcome string) EpisodeMetric            { return EpisodeMetric{} }
