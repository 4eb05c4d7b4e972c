package engine

import (
	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Terminal rewards fed to learning agents
const (
	WinReward  = 1.0
	LossReward = -WinReward
	DrawReward = 0.0
)

type Option func(e *Engine)

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// Engine drives one episode between two policies on a fresh board. Red
// moves first.
type Engine struct {
	Board     *game.Board
	agents    map[game.Disc]agent.Policy
	collector metrics.Collector
}

// transition is a learner's move awaiting its reward and successor state.
type transition struct {
	state  game.StateKey
	action int
}

func Local(red, yellow agent.Policy, options ...Option) *Engine {
	if red == nil || yellow == nil {
		panic("need two agents")
	}
	e := &Engine{
		Board: game.NewBoard(),
		agents: map[game.Disc]agent.Policy{
			game.Red:    red,
			game.Yellow: yellow,
		},
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates SelectAction, Drop and Evaluate until the board reports
// a non-ongoing outcome, then settles terminal rewards. Each learning
// agent receives exactly one Update per move it made: with reward 0 and
// the state observed when it was next to move, or with the terminal
// reward and the final state.
func (e *Engine) Run() (game.Outcome, metrics.EpisodeMetric) {
	log.Info().Msgf("player %s is starting", e.Board.Turn())
	e.collector.Start(e.Board.Turn().String())

	pending := map[game.Disc]*transition{}
	outcome := e.Board.Evaluate()
	step := 0
	for outcome == game.Ongoing {
		mark := e.Board.Turn()
		policy := e.agents[mark]

		// The opponent has replied since this agent's last move:
		// settle that move as a non-terminal transition.
		if learner, ok := policy.(agent.Learner); ok {
			if tr := pending[mark]; tr != nil {
				delta := learner.Update(tr.state, tr.action, 0, e.Board.Key())
				e.collector.AddUpdate(mark.String(), 0, delta)
				pending[mark] = nil
			}
		}

		column := policy.SelectAction(e.Board)
		if column == agent.NoMove {
			outcome = game.Draw
			break
		}

		state := e.Board.Key()
		if !e.Board.Drop(column) {
			// A conforming policy never proposes a full column. The
			// proposer forfeits and the episode ends.
			log.Warn().Msgf("player %s proposed full column %d and forfeits", mark, column)
			outcome = forfeitOutcome(mark)
			break
		}
		step++
		outcome = e.Board.Evaluate()

		if learner, ok := policy.(agent.Learner); ok {
			pending[mark] = &transition{state: state, action: column}
			e.collector.AddMove(mark.String(), column, learner.TableSize())
		} else {
			e.collector.AddMove(mark.String(), column, 0)
		}
		log.Debug().Msgf("step %d: player %s plays column %d", step, mark, column)
	}

	// Terminal rewards for moves still awaiting their update
	final := e.Board.Key()
	for mark, tr := range pending {
		if tr == nil {
			continue
		}
		learner := e.agents[mark].(agent.Learner)
		reward := rewardFor(outcome, mark)
		delta := learner.Update(tr.state, tr.action, reward, final)
		e.collector.AddUpdate(mark.String(), reward, delta)
	}

	log.Info().Msgf("episode over after %d moves: %s", step, outcome)
	return outcome, e.collector.Complete(outcome.String())
}

// forfeitOutcome awards the game to the opponent of the forfeiting mark.
func forfeitOutcome(mark game.Disc) game.Outcome {
	if mark == game.Red {
		return game.YellowWins
	}
	return game.RedWins
}

func rewardFor(outcome game.Outcome, mark game.Disc) float64 {
	switch {
	case outcome == game.RedWins && mark == game.Red,
		outcome == game.YellowWins && mark == game.Yellow:
		return WinReward
	case outcome == game.RedWins || outcome == game.YellowWins:
		return LossReward
	default:
		return DrawReward
	}
}
