package agent

import "connectfour/game"

type stateAction struct {
	state  game.StateKey
	column int
}

// qtable maps (state, column) pairs to value estimates. Entries are
// created lazily on upsert; absent entries read as 0. The table only
// grows for the lifetime of its owning agent.
type qtable map[stateAction]float64

func (t qtable) get(state game.StateKey, column int) float64 {
	return t[stateAction{state: state, column: column}]
}

func (t qtable) upsert(state game.StateKey, column int, value float64) {
	t[stateAction{state: state, column: column}] = value
}

// max returns the highest value stored for the state across all seven
// columns, legality notwithstanding. Unseen pairs count as 0.
func (t qtable) max(state game.StateKey) float64 {
	best := t.get(state, 0)
	for column := 1; column < game.Columns; column++ {
		if v := t.get(state, column); v > best {
			best = v
		}
	}
	return best
}
