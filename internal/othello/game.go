package othello

import (
	"fmt"
)

// PassMove is recorded in move lists when a player has to pass.
const PassMove = -1

// Status describes what the player to move can do.
type Status int

const (
	// StatusToMove means the player to move has at least one legal move.
	StatusToMove Status = iota
	// StatusMustPass means only the opponent can move.
	StatusMustPass
	// StatusGameOver means neither player can move.
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusToMove:
		return "to move"
	case StatusMustPass:
		return "must pass"
	case StatusGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// directions lists the 8 compass steps: N, NE, E, SE, S, SW, W, NW.
var directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Game is a board plus the player whose move is validated and applied next.
//
// A Game holds its board by reference. Plain assignment (alias := g) shares
// the board but not the turn, so playing a move on alias also changes the
// discs of g while leaving g's turn untouched. Use Clone for an independent
// copy. Only SwapPlayers and Pass are safe on an assigned copy.
type Game struct {
	board Board
	turn  Player
}

// NewGame creates a standard game in the starting position.
func NewGame() Game {
	game, _ := NewGameSize(Width, Height)
	return game
}

// NewGameSize creates a game in the starting position on a custom board.
// The four starting discs are placed around the centre.
func NewGameSize(width, height int) (Game, error) {
	if width < 2 || height < 2 {
		return Game{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	board, err := NewBoardSize(width, height)
	if err != nil {
		return Game{}, err
	}

	cx, cy := width/2, height/2

	board.Set(cx-1, cy-1, CellOf(PlayerOne))
	board.Set(cx, cy, CellOf(PlayerOne))
	board.Set(cx-1, cy, CellOf(PlayerTwo))
	board.Set(cx, cy-1, CellOf(PlayerTwo))

	return Game{
		board: board,
		turn:  PlayerOne,
	}, nil
}

// NewGameFromBoard creates a game from an existing board. The board is cloned.
func NewGameFromBoard(board Board, turn Player) Game {
	return Game{
		board: board.Clone(),
		turn:  turn,
	}
}

// Turn returns the player to move.
func (g Game) Turn() Player {
	return g.turn
}

// Board returns a copy of the board.
func (g Game) Board() Board {
	return g.board.Clone()
}

// Width returns the number of columns of the board.
func (g Game) Width() int {
	return g.board.Width()
}

// Height returns the number of rows of the board.
func (g Game) Height() int {
	return g.board.Height()
}

// Size returns the number of cells on the board.
func (g Game) Size() int {
	return g.board.Size()
}

// CountOccupied returns the number of discs on the board.
func (g Game) CountOccupied() int {
	return g.board.CountOccupied()
}

// Count returns the number of discs of a player.
func (g Game) Count(p Player) int {
	return g.board.Count(p)
}

// Clone returns a copy sharing no state with g.
func (g Game) Clone() Game {
	return Game{
		board: g.board.Clone(),
		turn:  g.turn,
	}
}

// Equal checks if two games have the same board and player to move.
func (g Game) Equal(other Game) bool {
	return g.turn == other.turn && g.board.Equal(other.board)
}

// Flips returns the opponent discs that flip when the player to move plays
// on index, in no particular order. It returns nil for illegal moves.
func (g Game) Flips(index int) []int {
	return g.flipsFor(index, g.turn)
}

func (g Game) flipsFor(index int, player Player) []int {
	if index < 0 || index >= g.board.Size() || g.board.GetIndex(index) != Empty {
		return nil
	}

	own := CellOf(player)
	opponent := CellOf(player.Opponent())
	x0, y0 := g.board.Coords(index)

	var flipped []int

	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		x, y := x0+dx, y0+dy

		if !g.board.OnBoard(x, y) || g.board.Get(x, y) != opponent {
			continue
		}

		walked := 0
		for g.board.OnBoard(x, y) && g.board.Get(x, y) == opponent {
			walked++
			x += dx
			y += dy
		}

		if !g.board.OnBoard(x, y) || g.board.Get(x, y) != own {
			continue
		}

		for dist := 1; dist <= walked; dist++ {
			flipped = append(flipped, g.board.Index(x0+dist*dx, y0+dist*dy))
		}
	}

	return flipped
}

// IsValidMove checks if the player to move can play on index.
func (g Game) IsValidMove(index int) bool {
	return len(g.Flips(index)) > 0
}

// Moves returns all legal moves of the player to move in row-major order.
func (g Game) Moves() []int {
	return g.movesFor(g.turn)
}

func (g Game) movesFor(player Player) []int {
	var moves []int
	for index := range g.board.Size() {
		if len(g.flipsFor(index, player)) > 0 {
			moves = append(moves, index)
		}
	}
	return moves
}

// HasMoves checks if the player to move has any legal move.
func (g Game) HasMoves() bool {
	return g.hasMovesFor(g.turn)
}

func (g Game) hasMovesFor(player Player) bool {
	for index := range g.board.Size() {
		if len(g.flipsFor(index, player)) > 0 {
			return true
		}
	}
	return false
}

// Status reports whether the player to move can move, must pass, or whether
// the game is over.
func (g Game) Status() Status {
	switch {
	case g.hasMovesFor(g.turn):
		return StatusToMove
	case g.hasMovesFor(g.turn.Opponent()):
		return StatusMustPass
	default:
		return StatusGameOver
	}
}

// Play plays a move at (x, y) for the player to move.
func (g *Game) Play(x, y int) error {
	if !g.board.OnBoard(x, y) {
		return fmt.Errorf("%w: (%d, %d) is not on the board", ErrInvalidMove, x, y)
	}
	return g.PlayIndex(g.board.Index(x, y))
}

// PlayIndex plays a move at a linear index for the player to move. Either the
// disc is placed and every sandwiched disc flips, or nothing changes.
func (g *Game) PlayIndex(index int) error {
	flipped := g.Flips(index)
	if len(flipped) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMove, g.board.Field(index))
	}

	own := CellOf(g.turn)
	g.board.SetIndex(index, own)
	for _, f := range flipped {
		g.board.SetIndex(f, own)
	}

	g.turn = g.turn.Opponent()
	return nil
}

// SwapPlayers passes the turn without touching the board. It does not check
// whether the player to move actually has to pass; see Pass.
func (g *Game) SwapPlayers() {
	g.turn = g.turn.Opponent()
}

// Pass passes the turn if the player to move has no legal moves.
func (g *Game) Pass() error {
	if g.HasMoves() {
		return ErrPassNotAllowed
	}
	g.SwapPlayers()
	return nil
}

// Winner returns the player with strictly more discs, false on a tie.
func (g Game) Winner() (Player, bool) {
	one := g.board.Count(PlayerOne)
	two := g.board.Count(PlayerTwo)

	switch {
	case one > two:
		return PlayerOne, true
	case two > one:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// DiscDifference returns the disc count of the player to move minus the
// disc count of the opponent.
func (g Game) DiscDifference() int {
	return g.board.Count(g.turn) - g.board.Count(g.turn.Opponent())
}
