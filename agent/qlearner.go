package agent

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"connectfour/game"
)

// Default hyperparameters
const (
	DefaultAlpha   = 0.1 // Learning rate
	DefaultGamma   = 0.9 // Discount factor
	DefaultEpsilon = 0.1 // Exploration probability
)

type Option func(q *QLearner)

func WithAlpha(alpha float64) Option {
	return func(q *QLearner) {
		q.alpha = alpha
	}
}

func WithGamma(gamma float64) Option {
	return func(q *QLearner) {
		q.gamma = gamma
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(q *QLearner) {
		q.epsilon = epsilon
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(q *QLearner) {
		if rng != nil {
			q.rng = rng
		}
	}
}

// QLearner selects columns epsilon-greedily over a tabular value
// estimate and improves it with one-step off-policy updates. Each
// instance exclusively owns its table.
type QLearner struct {
	alpha   float64
	gamma   float64
	epsilon float64
	rng     *rand.Rand
	table   qtable
}

// NewQLearner builds a learner with the default hyperparameters unless
// overridden by options. Out-of-range values are rejected, not clamped.
func NewQLearner(options ...Option) (*QLearner, error) {
	q := &QLearner{
		alpha:   DefaultAlpha,
		gamma:   DefaultGamma,
		epsilon: DefaultEpsilon,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		table:   qtable{},
	}
	for _, option := range options {
		option(q)
	}
	if q.alpha <= 0 || q.alpha > 1 {
		return nil, fmt.Errorf("alpha must be in (0,1], got %v", q.alpha)
	}
	if q.gamma < 0 || q.gamma > 1 {
		return nil, fmt.Errorf("gamma must be in [0,1], got %v", q.gamma)
	}
	if q.epsilon < 0 || q.epsilon > 1 {
		return nil, fmt.Errorf("epsilon must be in [0,1], got %v", q.epsilon)
	}
	return q, nil
}

// SelectAction returns NoMove on a full board. With probability epsilon
// it explores uniformly over the legal columns; otherwise it exploits,
// scanning the legal columns left to right and keeping the first column
// with the highest stored value. The board is never mutated.
func (q *QLearner) SelectAction(b *game.Board) int {
	legal := b.LegalColumns()
	if len(legal) == 0 {
		return NoMove
	}
	if q.rng.Float64() < q.epsilon {
		return legal[q.rng.Intn(len(legal))]
	}
	state := b.Key()
	best := legal[0]
	bestValue := math.Inf(-1)
	for _, column := range legal {
		if v := q.table.get(state, column); v > bestValue {
			best = column
			bestValue = v
		}
	}
	return best
}

// Update applies the one-step Q-learning rule
//
//	Q[s,a] += alpha * (reward + gamma*max_a' Q[s',a'] - Q[s,a])
//
// with the max taken over all seven columns and unseen entries read as
// 0. It returns the temporal-difference error before scaling by alpha.
func (q *QLearner) Update(state game.StateKey, action int, reward float64, next game.StateKey) float64 {
	current := q.table.get(state, action)
	target := reward + q.gamma*q.table.max(next)
	delta := target - current
	q.table.upsert(state, action, current+q.alpha*delta)
	return delta
}

// Value returns the stored estimate for the pair, 0 if unseen.
func (q *QLearner) Value(state game.StateKey, action int) float64 {
	return q.table.get(state, action)
}

// TableSize returns the number of (state, action) entries learned so far.
func (q *QLearner) TableSize() int {
	return len(q.table)
}
