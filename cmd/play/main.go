package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/lk16/reversi-solver/internal/config"
	"github.com/lk16/reversi-solver/internal/display"
	"github.com/lk16/reversi-solver/internal/othello"
	"github.com/lk16/reversi-solver/internal/playout"
	"github.com/lk16/reversi-solver/internal/solver"
)

func main() {
	config.SetLogLevel()
	solverCfg := config.MustLoad(config.LoadSolverConfig())
	playoutCfg := config.MustLoad(config.LoadPlayoutConfig())

	levelOne := flag.Int("x", playoutCfg.Difficulty, "difficulty of X")
	levelTwo := flag.Int("o", playoutCfg.Difficulty, "difficulty of O")
	seed := flag.Uint64("seed", playoutCfg.Seed, "random seed, 0 picks one from the clock")
	solveEmpties := flag.Int("solve-empties", solverCfg.PlayoutSolveEmpties, "solve exactly from this many empty squares")
	quiet := flag.Bool("quiet", false, "only print the final position")
	flag.Parse()

	bots := make(map[othello.Player]*playout.Bot, 2)
	for player, level := range map[othello.Player]int{othello.PlayerOne: *levelOne, othello.PlayerTwo: *levelTwo} {
		cfg := *playoutCfg
		cfg.Difficulty = level
		if *seed != 0 {
			cfg.Seed = *seed + uint64(player)
		}
		bots[player] = playout.NewBot(cfg.Options()...)
	}

	s := solver.New(solverCfg.Options()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := othello.NewGame()

	for {
		if !*quiet {
			mustRender(game)
		}

		switch game.Status() {
		case othello.StatusGameOver:
			if *quiet {
				mustRender(game)
			}
			return
		case othello.StatusMustPass:
			slog.Info("Pass", "player", game.Turn())
			game.SwapPlayers()
			continue
		}

		var move int
		var err error
		if game.Size()-game.CountOccupied() <= *solveEmpties {
			move, err = solvedMove(ctx, s, game)
		} else {
			move, err = bots[game.Turn()].BestMove(ctx, game)
		}

		if errors.Is(err, context.Canceled) {
			slog.Info("Interrupted")
			return
		}
		if err != nil {
			slog.Error("Failed to pick move", "error", err)
			os.Exit(1)
		}

		slog.Info("Move", "player", game.Turn(), "field", game.Board().Field(move))

		if err = game.PlayIndex(move); err != nil {
			slog.Error("Failed to play move", "error", err)
			os.Exit(1)
		}
	}
}

func solvedMove(ctx context.Context, s *solver.Solver, g othello.Game) (int, error) {
	scores, err := s.Solve(ctx, g)
	if err != nil {
		return 0, fmt.Errorf("solving: %w", err)
	}

	best := slices.MaxFunc(scores, func(a, b solver.MoveScore) int {
		return a.Score - b.Score
	})

	slog.Debug("Solved move", "field", g.Board().Field(best.Move), "score", best.Score)
	return best.Move, nil
}

func mustRender(g othello.Game) {
	if err := display.Render(os.Stdout, g); err != nil {
		slog.Error("Failed to print board", "error", err)
		os.Exit(1)
	}
}
