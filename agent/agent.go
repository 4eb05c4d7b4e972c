package agent

import "connectfour/game"

// NoMove signals that the board has no legal column left. It is distinct
// from every valid column index so drivers can end the episode as a draw
// instead of attempting a placement.
const NoMove = -1

// Policy picks the next column for the player whose turn it is on the
// given board. Implementations must treat the board as read-only and
// return NoMove when no legal column exists.
type Policy interface {
	SelectAction(b *game.Board) int
}

// Learner is a Policy that improves from observed transitions. Update
// applies one learning step for the (state, action) pair and returns the
// temporal-difference error it corrected.
type Learner interface {
	Policy
	Update(state game.StateKey, action int, reward float64, next game.StateKey) float64
	Value(state game.StateKey, action int) float64
	TableSize() int
}
