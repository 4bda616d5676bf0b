package solver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lk16/reversi-solver/internal/othello"
)

// cancelCheckInterval is the number of nodes searched between context checks.
const cancelCheckInterval = 1024

// MoveScore is the negamax score of a root move, from the perspective of the
// player who made the move.
type MoveScore struct {
	Move  int
	Score int
}

// Stats describes the last finished search.
type Stats struct {
	Nodes   uint64
	Elapsed time.Duration
}

// NodesPerSecond returns the search speed.
func (s Stats) NodesPerSecond() int64 {
	elapsedSeconds := s.Elapsed.Seconds()
	if elapsedSeconds <= 0.000001 {
		return 0
	}
	return int64(float64(s.Nodes) / elapsedSeconds)
}

type Option func(s *Solver)

// WithAlphaBeta enables alpha-beta pruning. Scores are unchanged.
func WithAlphaBeta() Option {
	return func(s *Solver) {
		s.alphaBeta = true
	}
}

// WithCache stores exact scores of searched positions and reuses them across
// searches done by the same Solver.
func WithCache() Option {
	return func(s *Solver) {
		s.cache = NewCache()
	}
}

// WithWorkers searches root moves on up to n goroutines.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithoutPassing scores any position where the player to move has no legal
// moves as 0, even when the opponent could still move.
func WithoutPassing() Option {
	return func(s *Solver) {
		s.passing = false
	}
}

// Solver computes exact game-theoretic scores by exhaustive negamax search.
// A Solver never modifies the games passed to it.
type Solver struct {
	alphaBeta bool
	passing   bool
	workers   int
	cache     *Cache

	statsMutex sync.Mutex
	stats      Stats
}

// New creates a Solver. Without options it runs the plain sequential search.
func New(options ...Option) *Solver {
	s := &Solver{
		passing: true,
		workers: 1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Negamax returns the score of a game for a default Solver.
func Negamax(g othello.Game) int {
	score, _ := New().Negamax(context.Background(), g)
	return score
}

// Solve returns the per-move breakdown of a game for a default Solver.
func Solve(g othello.Game) []MoveScore {
	scores, _ := New().Solve(context.Background(), g)
	return scores
}

// Stats returns statistics of the last finished search.
func (s *Solver) Stats() Stats {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	return s.stats
}

// Negamax returns the score of g from the perspective of the player to move.
//
// If a move leaves the opponent without legal moves while the mover has more
// discs, the position scores (size + 1 - discs after that move) / 2, so faster
// wins score higher. Otherwise the score is the maximum of the negated scores
// of all successors. A player without legal moves passes if the opponent can
// still move; when neither side can move the score is 0.
func (s *Solver) Negamax(ctx context.Context, g othello.Game) (int, error) {
	run := s.newSearch(ctx, g)
	root := g.Clone()

	var score int
	var err error
	if s.workers > 1 {
		score, err = run.parallelRoot(root)
	} else {
		score = run.negamax(root, -run.inf, run.inf)
	}

	s.finish(run)

	if err == nil {
		err = run.err()
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

// Solve returns the score of every legal move of g, in the order of
// g.Moves(). Each score is -negamax of the position after the move.
func (s *Solver) Solve(ctx context.Context, g othello.Game) ([]MoveScore, error) {
	run := s.newSearch(ctx, g)

	moves := g.Moves()
	scores := make([]MoveScore, len(moves))

	err := run.forEachChild(g, moves, func(i int, child othello.Game) {
		scores[i] = MoveScore{
			Move:  moves[i],
			Score: -run.negamax(child, -run.inf, run.inf),
		}
	})

	s.finish(run)

	if err == nil {
		err = run.err()
	}
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// Analyze returns both the Negamax score and the Solve breakdown of g while
// searching the tree only once.
func (s *Solver) Analyze(ctx context.Context, g othello.Game) (int, []MoveScore, error) {
	scores, err := s.Solve(ctx, g)
	if err != nil {
		return 0, nil, err
	}

	if len(scores) == 0 {
		score, err := s.Negamax(ctx, g)
		if err != nil {
			return 0, nil, err
		}
		return score, scores, nil
	}

	for _, moveScore := range scores {
		child := g.Clone()
		mustPlay(&child, moveScore.Move)

		if score, ok := immediateWin(child, g.Turn()); ok {
			return score, scores, nil
		}
	}

	best := slices.MaxFunc(scores, func(a, b MoveScore) int {
		return a.Score - b.Score
	})
	return best.Score, scores, nil
}

func (s *Solver) newSearch(ctx context.Context, g othello.Game) *search {
	return &search{
		Solver:    s,
		ctx:       ctx,
		inf:       g.Size() + 1,
		startTime: time.Now(),
	}
}

func (s *Solver) finish(run *search) {
	stats := Stats{
		Nodes:   run.nodes.Load(),
		Elapsed: time.Since(run.startTime),
	}

	s.statsMutex.Lock()
	s.stats = stats
	s.statsMutex.Unlock()

	slog.Debug("Search finished",
		"nodes", stats.Nodes,
		"elapsed", stats.Elapsed,
		"nodes_per_second", stats.NodesPerSecond(),
		"alpha_beta", s.alphaBeta,
		"workers", s.workers,
	)
}

// search holds the state of a single Negamax or Solve call.
type search struct {
	*Solver
	ctx       context.Context
	inf       int
	startTime time.Time
	nodes     atomic.Uint64
	cancelled atomic.Bool
}

func (s *search) err() error {
	if s.cancelled.Load() {
		return s.ctx.Err()
	}
	return nil
}

// visit counts a node and reports whether the search should continue.
func (s *search) visit() bool {
	if s.cancelled.Load() {
		return false
	}

	if s.nodes.Add(1)%cancelCheckInterval == 1 && s.ctx.Err() != nil {
		s.cancelled.Store(true)
		return false
	}
	return true
}

func (s *search) negamax(g othello.Game, alpha, beta int) int {
	if !s.visit() {
		return 0
	}

	moves := g.Moves()

	if len(moves) == 0 {
		if !s.passing {
			return 0
		}

		passed := g
		passed.SwapPlayers()
		if !passed.HasMoves() {
			return 0
		}
		return -s.negamax(passed, -beta, -alpha)
	}

	key := ""
	if s.cache != nil {
		key = g.Key()
		if score, ok := s.cache.Lookup(key); ok {
			return score
		}
	}

	children := make([]othello.Game, len(moves))
	for i, move := range moves {
		child := g.Clone()
		mustPlay(&child, move)

		if score, ok := immediateWin(child, g.Turn()); ok {
			s.store(key, score)
			return score
		}
		children[i] = child
	}

	alphaOrig := alpha
	best := -s.inf

	for _, child := range children {
		score := -s.negamax(child, -beta, -alpha)

		if score > best {
			best = score
		}

		if s.alphaBeta {
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	}

	if s.cancelled.Load() {
		return 0
	}

	// Fail-soft bounds outside the window are not exact.
	if !s.alphaBeta || (alphaOrig < best && best < beta) {
		s.store(key, best)
	}

	return best
}

func (s *search) store(key string, score int) {
	if s.cache != nil && !s.cancelled.Load() {
		s.cache.Upsert(key, score)
	}
}

// parallelRoot computes the root score by searching all children with a full
// window on separate goroutines.
func (s *search) parallelRoot(g othello.Game) (int, error) {
	if !s.visit() {
		return 0, s.err()
	}

	moves := g.Moves()
	if len(moves) == 0 {
		return s.negamax(g, -s.inf, s.inf), nil
	}

	for _, move := range moves {
		child := g.Clone()
		mustPlay(&child, move)

		if score, ok := immediateWin(child, g.Turn()); ok {
			return score, nil
		}
	}

	scores := make([]int, len(moves))
	err := s.forEachChild(g, moves, func(i int, child othello.Game) {
		scores[i] = -s.negamax(child, -s.inf, s.inf)
	})
	if err != nil {
		return 0, err
	}

	return slices.Max(scores), nil
}

// forEachChild calls f with the position after each move, using up to
// s.workers goroutines. Every call gets its own clone.
func (s *search) forEachChild(g othello.Game, moves []int, f func(i int, child othello.Game)) error {
	group, ctx := errgroup.WithContext(s.ctx)
	group.SetLimit(s.workers)

	for i, move := range moves {
		child := g.Clone()
		mustPlay(&child, move)

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				s.cancelled.Store(true)
				return err
			}

			f(i, child)
			return s.err()
		})
	}

	return group.Wait()
}

// immediateWin checks whether the player who just moved into child has won
// because the opponent cannot reply.
func immediateWin(child othello.Game, mover othello.Player) (int, bool) {
	if child.HasMoves() {
		return 0, false
	}

	winner, ok := child.Winner()
	if !ok || winner != mover {
		return 0, false
	}

	return (child.Size() + 1 - child.CountOccupied()) / 2, true
}

// mustPlay plays a move produced by Moves. Failing to do so means the rules
// engine and the solver disagree, which is a bug.
func mustPlay(g *othello.Game, move int) {
	if err := g.PlayIndex(move); err != nil {
		panic(fmt.Errorf("solver: %w", err))
	}
}
