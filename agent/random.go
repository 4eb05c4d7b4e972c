package agent

import (
	"golang.org/x/exp/rand"

	"connectfour/game"
)

// Random draws uniform columns until one is legal. It never returns
// NoMove: callers must not ask it to move on a full board, or it will
// loop forever.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) SelectAction(b *game.Board) int {
	for {
		column := a.rng.Intn(game.Columns)
		if b.Legal(column) {
			return column
		}
	}
}
