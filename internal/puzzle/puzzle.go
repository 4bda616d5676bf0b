package puzzle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lk16/reversi-solver/internal/othello"
)

var ErrBacktrackTooFar = errors.New("backtrack exceeds number of played moves")

// Puzzle is a position reached by replaying a random game.
type Puzzle struct {
	ID   uuid.UUID
	Seed uint64

	// Moves lists the replayed plies. Passes are recorded as othello.PassMove.
	Moves []int

	Game othello.Game
}

type Option func(g *generator)

// WithObserver calls f with every position of the random game before a move
// is played on it. The game passed to f is a clone.
func WithObserver(f func(othello.Game)) Option {
	return func(g *generator) {
		g.observer = f
	}
}

type generator struct {
	observer func(othello.Game)
}

// Generate plays random legal moves from the starting position until neither
// player can move, then replays all but the last backtrack plies.
func Generate(seed uint64, backtrack int, options ...Option) (Puzzle, error) {
	gen := &generator{}
	for _, option := range options {
		option(gen)
	}

	moves := gen.randomGame(rand.New(rand.NewSource(seed)))

	if backtrack < 0 || backtrack > len(moves) {
		return Puzzle{}, fmt.Errorf("%w: backtrack %d, played %d", ErrBacktrackTooFar, backtrack, len(moves))
	}

	moves = moves[:len(moves)-backtrack]

	game, err := Replay(moves)
	if err != nil {
		return Puzzle{}, err
	}

	puzzle := Puzzle{
		ID:    uuid.New(),
		Seed:  seed,
		Moves: moves,
		Game:  game,
	}

	slog.Debug("Generated puzzle",
		"id", puzzle.ID,
		"seed", seed,
		"plies", len(moves),
		"backtrack", backtrack,
		"empties", game.Size()-game.CountOccupied(),
	)

	return puzzle, nil
}

// randomGame plays a full game and returns the plies, passes included.
// A final pass by both players is not recorded.
func (gen *generator) randomGame(rng *rand.Rand) []int {
	game := othello.NewGame()

	var plies []int

	for {
		switch game.Status() {
		case othello.StatusGameOver:
			return plies
		case othello.StatusMustPass:
			game.SwapPlayers()
			plies = append(plies, othello.PassMove)
			continue
		}

		if gen.observer != nil {
			gen.observer(game.Clone())
		}

		moves := game.Moves()
		move := moves[rng.Intn(len(moves))]

		if err := game.PlayIndex(move); err != nil {
			panic(fmt.Errorf("puzzle: %w", err))
		}
		plies = append(plies, move)
	}
}

// Replay plays plies from the starting position. othello.PassMove passes.
func Replay(plies []int) (othello.Game, error) {
	game, err := othello.NewGameFromMoves(plies)
	if err != nil {
		return othello.Game{}, fmt.Errorf("replaying: %w", err)
	}
	return game, nil
}
