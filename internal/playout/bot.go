package playout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lk16/reversi-solver/internal/othello"
)

const (
	MinDifficulty     = 1
	MaxDifficulty     = 10
	DefaultDifficulty = 5

	// DefaultExploration is the UCB1 exploration constant.
	DefaultExploration = 0.75

	playoutsPerLevel = 200
	maxGreediness    = 0.9

	// cancelCheckInterval is the number of playouts between context checks.
	cancelCheckInterval = 64
)

var ErrNoMoves = errors.New("no legal moves")

type Option func(b *Bot)

// WithDifficulty sets the strength of the bot. Values are clamped to
// [MinDifficulty, MaxDifficulty].
func WithDifficulty(difficulty int) Option {
	return func(b *Bot) {
		b.difficulty = min(max(difficulty, MinDifficulty), MaxDifficulty)
	}
}

// WithPlayouts overrides the number of playouts per move derived from the
// difficulty.
func WithPlayouts(n int) Option {
	return func(b *Bot) {
		if n > 0 {
			b.playouts = n
		}
	}
}

// WithSeed makes the bot deterministic.
func WithSeed(seed uint64) Option {
	return func(b *Bot) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExploration sets the UCB1 exploration constant.
func WithExploration(c float64) Option {
	return func(b *Bot) {
		if c >= 0 {
			b.exploration = c
		}
	}
}

// Bot picks moves by flat Monte Carlo search over the root moves.
// A Bot is not safe for concurrent use.
type Bot struct {
	difficulty  int
	playouts    int
	exploration float64
	rng         *rand.Rand
}

// NewBot creates a Bot. Without options it plays at DefaultDifficulty with a
// time-based seed.
func NewBot(options ...Option) *Bot {
	b := &Bot{
		difficulty:  DefaultDifficulty,
		exploration: DefaultExploration,
	}
	for _, option := range options {
		option(b)
	}

	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return b
}

// Difficulty returns the configured difficulty.
func (b *Bot) Difficulty() int {
	return b.difficulty
}

// Playouts returns the number of playouts spent on each move.
func (b *Bot) Playouts() int {
	if b.playouts > 0 {
		return b.playouts
	}
	return b.difficulty * playoutsPerLevel
}

// greediness is the probability that a rollout picks the heuristic move
// instead of a random one.
func (b *Bot) greediness() float64 {
	return maxGreediness * float64(b.difficulty-MinDifficulty) / float64(MaxDifficulty-MinDifficulty)
}

type arm struct {
	move   int
	visits int
	reward float64
}

func (a *arm) mean() float64 {
	return a.reward / float64(a.visits)
}

// BestMove returns a legal move for the player to move. When ctx is cancelled
// the best move found so far is returned; if no playout finished yet, the
// context error is returned instead.
func (b *Bot) BestMove(ctx context.Context, g othello.Game) (int, error) {
	moves := g.Moves()

	switch len(moves) {
	case 0:
		return 0, ErrNoMoves
	case 1:
		return moves[0], nil
	}

	for _, move := range moves {
		child := g.Clone()
		mustPlay(&child, move)

		if winner, ok := child.Winner(); ok && winner == g.Turn() && child.Status() == othello.StatusGameOver {
			return move, nil
		}
	}

	startTime := time.Now()
	arms := make([]arm, len(moves))
	for i, move := range moves {
		arms[i].move = move
	}

	total := 0
	for total < b.Playouts() {
		if total%cancelCheckInterval == 0 && ctx.Err() != nil {
			if total == 0 {
				return 0, ctx.Err()
			}
			break
		}

		a := &arms[b.selectArm(arms, total)]

		child := g.Clone()
		mustPlay(&child, a.move)

		a.visits++
		a.reward += b.rollout(child, g.Turn())
		total++
	}

	best := &arms[0]
	for i := range arms {
		if arms[i].visits > best.visits {
			best = &arms[i]
		}
	}

	slog.Debug("Playout search finished",
		"playouts", total,
		"elapsed", time.Since(startTime),
		"move", best.move,
		"visits", best.visits,
		"win_rate", best.mean(),
		"difficulty", b.difficulty,
	)

	return best.move, nil
}

// selectArm returns the arm to play next. Unvisited arms go first, then the
// arm with the highest UCB1 bound.
func (b *Bot) selectArm(arms []arm, total int) int {
	for i := range arms {
		if arms[i].visits == 0 {
			return i
		}
	}

	logTotal := math.Log(float64(total))

	best := 0
	bestBound := math.Inf(-1)
	for i := range arms {
		bound := arms[i].mean() + b.exploration*math.Sqrt(logTotal/float64(arms[i].visits))
		if bound > bestBound {
			best = i
			bestBound = bound
		}
	}
	return best
}

// rollout plays g to the end and scores the result for player.
func (b *Bot) rollout(g othello.Game, player othello.Player) float64 {
	greediness := b.greediness()

	for {
		moves := g.Moves()

		if len(moves) == 0 {
			g.SwapPlayers()
			if !g.HasMoves() {
				break
			}
			continue
		}

		var move int
		if b.rng.Float64() < greediness {
			move = greedyMove(g, moves)
		} else {
			move = moves[b.rng.Intn(len(moves))]
		}

		mustPlay(&g, move)
	}

	winner, ok := g.Winner()
	switch {
	case !ok:
		return 0.5
	case winner == player:
		return 1
	default:
		return 0
	}
}

func mustPlay(g *othello.Game, move int) {
	if err := g.PlayIndex(move); err != nil {
		panic(fmt.Errorf("playout: %w", err))
	}
}
