package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, outcome, err := experiments.RunLearningTrace(uint64(time.Now().UnixNano()))
	if err != nil {
		log.Fatal().Err(err).Msg("learning trace failed")
	}

	for _, row := range board.Render() {
		fmt.Println(row)
	}
	fmt.Printf("Outcome: %s\n", outcome)
}
