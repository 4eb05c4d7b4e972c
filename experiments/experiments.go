package experiments

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// RunLearningTrace plays one episode between a fresh learner and the
// uniformly random baseline, stores the run records as CSV, renders the
// per-step learning trace as a chart, and returns the final position.
func RunLearningTrace(seed uint64) (*game.Board, game.Outcome, error) {
	learner, err := agent.NewQLearner(agent.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		return nil, game.Ongoing, fmt.Errorf("failed to build learner: %w", err)
	}
	baseline := agent.NewRandom(rand.New(rand.NewSource(seed + 1)))

	log.Info().Msgf("starting learning trace episode with seed %d...", seed)

	e := engine.Local(learner, baseline, engine.WithCollector(metrics.NewCollector()))
	outcome, episode := e.Run()

	summarize(episode, learner)

	if err := store(episode); err != nil {
		return nil, game.Ongoing, err
	}

	log.Info().Msgf("completed learning trace episode: %s", outcome)
	return e.Board, outcome, nil
}

// summarize logs aggregate statistics over the episode's learning steps.
func summarize(episode metrics.EpisodeMetric, learner *agent.QLearner) {
	tdErrors := make([]float64, 0, len(episode.Updates))
	for _, u := range episode.Updates {
		tdErrors = append(tdErrors, math.Abs(u.TDError))
	}
	if len(tdErrors) == 0 {
		log.Info().Msg("no learning steps recorded")
		return
	}
	mean, std := stat.MeanStdDev(tdErrors, nil)
	if math.IsNaN(std) { // Single sample
		std = 0
	}
	log.Info().Msgf("updates=%d mean|td|=%.4f std|td|=%.4f table=%d",
		len(tdErrors), mean, std, learner.TableSize())
}

// store writes the run records and the learning trace chart into a
// timestamped run directory.
func store(episode metrics.EpisodeMetric) error {
	writer, err := metrics.NewWriter("learning_trace")
	if err != nil {
		return fmt.Errorf("failed to create run writer: %w", err)
	}

	configs := []metrics.AgentConfig{
		{ID: 1, Name: "qlearner", Alpha: agent.DefaultAlpha, Gamma: agent.DefaultGamma, Epsilon: agent.DefaultEpsilon},
		{ID: 2, Name: "random"},
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	if err := writer.WriteEpisodeRecords([]metrics.EpisodeRecord{
		{ID: 1, Agent1: 1, Agent2: 2, EpisodeMetric: episode},
	}); err != nil {
		return err
	}

	moveRecords := make([]metrics.MoveRecord, 0, len(episode.Moves))
	for _, m := range episode.Moves {
		moveRecords = append(moveRecords, metrics.MoveRecord{Episode: 1, MoveMetric: m})
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	updateRecords := make([]metrics.UpdateRecord, 0, len(episode.Updates))
	for _, u := range episode.Updates {
		updateRecords = append(updateRecords, metrics.UpdateRecord{Episode: 1, UpdateMetric: u})
	}
	if err := writer.WriteUpdateRecords(updateRecords); err != nil {
		return err
	}

	if err := plotTrace(writer.BaseDir(), episode.Updates); err != nil {
		return err
	}

	log.Info().Msgf("stored run records in %s", writer.BaseDir())
	return nil
}
