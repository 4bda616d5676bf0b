package othello

import (
	"encoding/binary"
	"fmt"
)

// Symmetry maps a board onto itself by rotating or mirroring it.
type Symmetry int

const (
	Identity Symmetry = iota
	FlipHorizontal
	FlipVertical
	Rotate180

	// The remaining symmetries swap width and height and only apply to
	// square boards.
	Transpose
	AntiTranspose
	Rotate90
	Rotate270
)

func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "identity"
	case FlipHorizontal:
		return "flip horizontal"
	case FlipVertical:
		return "flip vertical"
	case Rotate180:
		return "rotate 180"
	case Transpose:
		return "transpose"
	case AntiTranspose:
		return "anti-transpose"
	case Rotate90:
		return "rotate 90"
	case Rotate270:
		return "rotate 270"
	default:
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
}

var (
	rectangularSymmetries = []Symmetry{Identity, FlipHorizontal, FlipVertical, Rotate180}
	squareSymmetries      = []Symmetry{Identity, FlipHorizontal, FlipVertical, Rotate180, Transpose, AntiTranspose, Rotate90, Rotate270}
)

// Symmetries returns the symmetries of the board shape: 8 for square boards
// and 4 otherwise.
func (b Board) Symmetries() []Symmetry {
	if b.width == b.height {
		return squareSymmetries
	}
	return rectangularSymmetries
}

// apply maps (x, y) on a width x height board to its transformed coordinates.
func (s Symmetry) apply(x, y, width, height int) (int, int) {
	switch s {
	case FlipHorizontal:
		return width - 1 - x, y
	case FlipVertical:
		return x, height - 1 - y
	case Rotate180:
		return width - 1 - x, height - 1 - y
	case Transpose:
		return y, x
	case AntiTranspose:
		return height - 1 - y, width - 1 - x
	case Rotate90:
		return height - 1 - y, x
	case Rotate270:
		return y, width - 1 - x
	default:
		return x, y
	}
}

// Transform returns a transformed copy of the board. It panics if s does not
// apply to the board shape.
func (b Board) Transform(s Symmetry) Board {
	if s >= Transpose && b.width != b.height {
		panic(fmt.Sprintf("%s does not apply to a %dx%d board", s, b.width, b.height))
	}

	transformed := b.Clone()
	for index, cell := range b.cells {
		x, y := b.Coords(index)
		tx, ty := s.apply(x, y, b.width, b.height)
		transformed.cells[transformed.Index(tx, ty)] = cell
	}
	return transformed
}

// Transform returns a transformed copy of the game. The player to move is kept.
func (g Game) Transform(s Symmetry) Game {
	return Game{
		board: g.board.Transform(s),
		turn:  g.turn,
	}
}

// Key returns a compact string identifying the board size, contents and the
// player to move. Games that are rotations or mirror images of each other
// have equal keys.
func (g Game) Key() string {
	var best string
	for i, s := range g.board.Symmetries() {
		key := rawKey(g.board.Transform(s), g.turn)
		if i == 0 || key < best {
			best = key
		}
	}
	return best
}

func rawKey(board Board, turn Player) string {
	key := make([]byte, 0, len(board.cells)+binary.MaxVarintLen64+1)
	key = binary.AppendUvarint(key, uint64(board.width))
	for _, cell := range board.cells {
		key = append(key, byte(cell))
	}
	key = append(key, byte(turn))
	return string(key)
}
