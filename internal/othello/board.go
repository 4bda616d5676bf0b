package othello

import (
	"fmt"
	"iter"
	"strings"
)

const (
	Width  = 8
	Height = 8
)

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return PlayerOne + PlayerTwo - p
}

// Char returns the layout character of the player's discs.
func (p Player) Char() byte {
	return CellOf(p).Char()
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// ParsePlayer parses "X" or "O", case-insensitive.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(s) {
	case "X":
		return PlayerOne, nil
	case "O":
		return PlayerTwo, nil
	default:
		return 0, fmt.Errorf("invalid player: %q", s)
	}
}

// Cell is either Empty or occupied by a player.
type Cell uint8

const (
	Empty Cell = 0
)

// CellOf returns the cell occupied by p.
func CellOf(p Player) Cell {
	return Cell(p)
}

// Player returns the occupying player, false for an empty cell.
func (c Cell) Player() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

// Char returns the layout character of the cell.
func (c Cell) Char() byte {
	switch c {
	case CellOf(PlayerOne):
		return 'X'
	case CellOf(PlayerTwo):
		return 'O'
	default:
		return '-'
	}
}

// Board is a rectangular grid of cells stored in row-major order.
// It has no notion of turns or legality.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board of the standard size.
func NewBoard() Board {
	board, _ := NewBoardSize(Width, Height)
	return board
}

// NewBoardSize creates an empty board with the given dimensions.
func NewBoardSize(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Size returns the number of cells.
func (b Board) Size() int {
	return len(b.cells)
}

// Index converts coordinates to a linear index.
func (b Board) Index(x, y int) int {
	return x + y*b.width
}

// Coords converts a linear index to coordinates.
func (b Board) Coords(index int) (int, int) {
	return index % b.width, index / b.width
}

// OnBoard checks whether the coordinates are inside the board.
func (b Board) OnBoard(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y). It panics on out-of-range coordinates.
func (b Board) Get(x, y int) Cell {
	b.mustOnBoard(x, y)
	return b.cells[b.Index(x, y)]
}

// Set overwrites the cell at (x, y). It panics on out-of-range coordinates.
func (b Board) Set(x, y int, cell Cell) {
	b.mustOnBoard(x, y)
	b.cells[b.Index(x, y)] = cell
}

// GetIndex returns the cell at a linear index.
func (b Board) GetIndex(index int) Cell {
	return b.cells[index]
}

// SetIndex overwrites the cell at a linear index.
func (b Board) SetIndex(index int, cell Cell) {
	b.cells[index] = cell
}

func (b Board) mustOnBoard(x, y int) {
	if !b.OnBoard(x, y) {
		panic(fmt.Sprintf("coordinates (%d, %d) outside %dx%d board", x, y, b.width, b.height))
	}
}

// CountOccupied returns the number of non-empty cells.
func (b Board) CountOccupied() int {
	count := 0
	for _, cell := range b.cells {
		if cell != Empty {
			count++
		}
	}
	return count
}

// Count returns the number of discs of a player.
func (b Board) Count(p Player) int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellOf(p) {
			count++
		}
	}
	return count
}

// Cells yields all cells left to right, top to bottom.
func (b Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, cell := range b.cells {
			if !yield(cell) {
				return
			}
		}
	}
}

// All yields index and cell pairs in row-major order.
func (b Board) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for index, cell := range b.cells {
			if !yield(index, cell) {
				return
			}
		}
	}
}

// Clone returns a deep copy that shares no memory with b.
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	return Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal checks if two boards have the same size and contents.
func (b Board) Equal(other Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}

	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String returns the layout representation without move markers.
func (b Board) String() string {
	var builder strings.Builder
	builder.Grow(len(b.cells) + b.height)

	for y := range b.height {
		for x := range b.width {
			builder.WriteByte(b.cells[b.Index(x, y)].Char())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
