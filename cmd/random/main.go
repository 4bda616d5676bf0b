package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/lk16/reversi-solver/internal/config"
	"github.com/lk16/reversi-solver/internal/display"
	"github.com/lk16/reversi-solver/internal/othello"
	"github.com/lk16/reversi-solver/internal/puzzle"
)

const slowDelay = 500 * time.Millisecond

func main() {
	config.SetLogLevel()

	backtrack := flag.Int("backtrack", 0, "number of plies to undo at the end of the game")
	slow := flag.Bool("slow", false, "show every position while the random game is played")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var options []puzzle.Option
	if *slow {
		output := termenv.NewOutput(os.Stdout)

		options = append(options, puzzle.WithObserver(func(g othello.Game) {
			time.Sleep(slowDelay)
			output.ClearScreen()

			if err := display.Render(os.Stdout, g); err != nil {
				slog.Error("Failed to print board", "error", err)
			}
		}))
	}

	p, err := puzzle.Generate(*seed, *backtrack, options...)
	if err != nil {
		slog.Error("Failed to generate puzzle", "error", err)
		os.Exit(1)
	}

	board := p.Game.Board()
	fields := make([]string, len(p.Moves))
	for i, move := range p.Moves {
		fields[i] = board.Field(move)
	}

	slog.Info("Generated puzzle",
		"id", p.ID,
		"seed", p.Seed,
		"turn", p.Game.Turn(),
		"moves", strings.Join(fields, " "),
	)

	fmt.Print(p.Game.String())
}
