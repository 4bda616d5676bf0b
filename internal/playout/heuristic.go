package playout

import (
	"github.com/lk16/reversi-solver/internal/othello"
)

const (
	cornerWeight  = 100
	xSquareWeight = -50
	cSquareWeight = -20
	edgeWeight    = 10
	innerWeight   = 1

	mobilityWeight = 5
	finalWeight    = 100
)

// squareWeight rates a square by its distance to the board edges: corners are
// good, squares next to a corner are bad, other edge squares are fine.
func squareWeight(width, height, index int) int {
	x, y := index%width, index/width
	dx := min(x, width-1-x)
	dy := min(y, height-1-y)

	switch {
	case dx == 0 && dy == 0:
		return cornerWeight
	case dx == 1 && dy == 1:
		return xSquareWeight
	case (dx == 0 && dy == 1) || (dx == 1 && dy == 0):
		return cSquareWeight
	case dx == 0 || dy == 0:
		return edgeWeight
	default:
		return innerWeight
	}
}

// Evaluate returns a static score of g for the player to move. Finished games
// return the disc difference times 100.
func Evaluate(g othello.Game) int {
	passed := g
	passed.SwapPlayers()

	moves := len(g.Moves())
	opponentMoves := len(passed.Moves())

	if moves == 0 && opponentMoves == 0 {
		return finalWeight * g.DiscDifference()
	}

	board := g.Board()
	own := othello.CellOf(g.Turn())
	opponent := othello.CellOf(g.Turn().Opponent())

	weightDiff := 0
	for index, cell := range board.All() {
		switch cell {
		case own:
			weightDiff += squareWeight(g.Width(), g.Height(), index)
		case opponent:
			weightDiff -= squareWeight(g.Width(), g.Height(), index)
		}
	}

	return weightDiff + mobilityWeight*(moves-opponentMoves)
}

// greedyMove picks the move on the best square, preferring more flips on ties.
func greedyMove(g othello.Game, moves []int) int {
	best := moves[0]
	bestScore := 0

	for i, move := range moves {
		score := 4*squareWeight(g.Width(), g.Height(), move) + len(g.Flips(move))
		if i == 0 || score > bestScore {
			best = move
			bestScore = score
		}
	}

	return best
}
