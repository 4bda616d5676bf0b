package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/lk16/reversi-solver/internal/config"
	"github.com/lk16/reversi-solver/internal/display"
	"github.com/lk16/reversi-solver/internal/othello"
	"github.com/lk16/reversi-solver/internal/solver"
)

func main() {
	config.SetLogLevel()
	cfg := config.MustLoad(config.LoadSolverConfig())

	file := flag.String("file", "", "read the layout from this file instead of stdin")
	turn := flag.String("turn", "X", "player to move, X or O")
	validate := flag.Bool("validate", false, "check that '*' markers match the legal moves")
	width := flag.Int("width", othello.Width, "board width")
	height := flag.Int("height", othello.Height, "board height")
	workers := flag.Int("workers", cfg.Workers, "number of goroutines searching root moves")
	alphaBeta := flag.Bool("alphabeta", cfg.AlphaBeta, "enable alpha-beta pruning")
	cache := flag.Bool("cache", cfg.Cache, "enable the transposition cache")
	noPass := flag.Bool("nopass", false, "score positions without legal moves as 0 instead of passing")
	pgnFile := flag.String("pgn", "", "solve the position of a PGN game record instead of a layout")
	moveList := flag.String("moves", "", "solve the position after these moves, e.g. \"e3 f3 g3\"")
	plies := flag.Int("ply", -1, "with -pgn or -moves, replay only this many plies")
	flag.Parse()

	cfg.Workers = *workers
	cfg.AlphaBeta = *alphaBeta
	cfg.Cache = *cache

	game, err := source{
		file:     *file,
		pgnFile:  *pgnFile,
		moveList: *moveList,
		plies:    *plies,
		turn:     *turn,
		width:    *width,
		height:   *height,
		validate: *validate,
	}.load()
	if err != nil {
		slog.Error("Failed to load position", "error", err)
		os.Exit(1)
	}

	if err = display.Render(os.Stdout, game); err != nil {
		slog.Error("Failed to print board", "error", err)
		os.Exit(1)
	}

	options := cfg.Options()
	if *noPass {
		options = append(options, solver.WithoutPassing())
	}
	s := solver.New(options...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	score, scores, err := s.Analyze(ctx, game)
	if err != nil {
		slog.Error("Search interrupted", "error", err)
		os.Exit(1)
	}

	slices.SortStableFunc(scores, func(a, b solver.MoveScore) int {
		return b.Score - a.Score
	})

	board := game.Board()
	for _, moveScore := range scores {
		fmt.Printf("%s %+d\n", board.Field(moveScore.Move), moveScore.Score)
	}
	fmt.Printf("score: %+d\n", score)

	stats := s.Stats()
	slog.Info("Solved", "nodes", stats.Nodes, "elapsed", stats.Elapsed, "nodes_per_second", stats.NodesPerSecond())
}

// source describes where the position to solve comes from.
type source struct {
	file     string
	pgnFile  string
	moveList string
	plies    int
	turn     string
	width    int
	height   int
	validate bool
}

func (src source) load() (othello.Game, error) {
	switch {
	case src.pgnFile != "":
		data, err := os.ReadFile(src.pgnFile)
		if err != nil {
			return othello.Game{}, fmt.Errorf("reading %s: %w", src.pgnFile, err)
		}

		pgn, err := othello.ParsePGN(string(data))
		if err != nil {
			return othello.Game{}, fmt.Errorf("parsing %s: %w", src.pgnFile, err)
		}

		black, white := pgn.Metadata.Player(othello.PlayerOne), pgn.Metadata.Player(othello.PlayerTwo)
		slog.Info("Loaded game record", "black", black.Name, "white", white.Name, "result", pgn.Metadata.Result)

		return pgn.Game(src.plies)

	case src.moveList != "":
		moves, err := othello.ParseMoves(src.moveList)
		if err != nil {
			return othello.Game{}, err
		}
		if src.plies >= 0 && src.plies < len(moves) {
			moves = moves[:src.plies]
		}
		return othello.NewGameFromMoves(moves)
	}

	layout, err := readLayout(src.file)
	if err != nil {
		return othello.Game{}, err
	}

	player, err := othello.ParsePlayer(src.turn)
	if err != nil {
		return othello.Game{}, err
	}

	return othello.ParseGameSize(layout, src.width, src.height, player, src.validate)
}

func readLayout(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
