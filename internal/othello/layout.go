package othello

import (
	"fmt"
	"slices"
	"strings"
)

// ParseGame parses a standard size layout, see ParseGameSize.
func ParseGame(layout string, turn Player, validate bool) (Game, error) {
	return ParseGameSize(layout, Width, Height, turn, validate)
}

// ParseGameSize parses a layout with one character per cell and one row per
// line: 'X' for PlayerOne, 'O' for PlayerTwo, '-' for empty and '*' for an
// empty cell that is a legal move for turn. Missing rows and columns are empty.
//
// When validate is set, the legal moves are recomputed and must match the
// '*' markers exactly.
func ParseGameSize(layout string, width, height int, turn Player, validate bool) (Game, error) {
	board, err := NewBoardSize(width, height)
	if err != nil {
		return Game{}, err
	}

	var marked []int

	layout = strings.TrimSuffix(layout, "\n")

	for y, row := range strings.Split(layout, "\n") {
		row = strings.TrimSuffix(row, "\r")

		if y >= height {
			return Game{}, fmt.Errorf("%w: too many rows, expected at most %d", ErrMalformedLayout, height)
		}

		for x := range len(row) {
			if x >= width {
				return Game{}, fmt.Errorf("%w: too many columns in row %d, expected at most %d", ErrMalformedLayout, y+1, width)
			}

			switch row[x] {
			case 'X':
				board.Set(x, y, CellOf(PlayerOne))
			case 'O':
				board.Set(x, y, CellOf(PlayerTwo))
			case '*':
				marked = append(marked, board.Index(x, y))
			case '-':
			default:
				return Game{}, fmt.Errorf("%w: unexpected character %q in row %d", ErrMalformedLayout, row[x], y+1)
			}
		}
	}

	game := Game{
		board: board,
		turn:  turn,
	}

	if !validate {
		return game, nil
	}

	moves := game.Moves()
	if !slices.Equal(moves, marked) {
		return Game{}, fmt.Errorf("%w: marked %s, computed %s", ErrMovesMismatch, board.fields(marked), board.fields(moves))
	}

	return game, nil
}

func (b Board) fields(indexes []int) string {
	fields := make([]string, len(indexes))
	for i, index := range indexes {
		fields[i] = b.Field(index)
	}
	return "[" + strings.Join(fields, " ") + "]"
}

// String returns the layout of the game, marking legal moves with '*'.
func (g Game) String() string {
	moves := g.Moves()

	var builder strings.Builder
	builder.Grow(g.board.Size() + g.board.Height())

	next := 0
	for y := range g.board.Height() {
		for x := range g.board.Width() {
			index := g.board.Index(x, y)

			if next < len(moves) && moves[next] == index {
				builder.WriteByte('*')
				next++
				continue
			}

			builder.WriteByte(g.board.GetIndex(index).Char())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
