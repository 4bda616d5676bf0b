package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lk16/reversi-solver/internal/othello"
)

const (
	playerOneSymbol = "●"
	playerTwoSymbol = "○"
	moveSymbol      = "·"
	emptySymbol     = " "
)

type Option func(r *renderer)

// WithProfile forces a colour profile instead of detecting it from w.
func WithProfile(profile termenv.Profile) Option {
	return func(r *renderer) {
		r.outputOptions = append(r.outputOptions, termenv.WithProfile(profile))
	}
}

// WithoutMoves hides the legal move markers.
func WithoutMoves() Option {
	return func(r *renderer) {
		r.hideMoves = true
	}
}

type renderer struct {
	outputOptions []termenv.OutputOption
	hideMoves     bool
}

// Render writes a framed board with column letters and row numbers, followed
// by the disc count and the game status.
func Render(w io.Writer, g othello.Game, options ...Option) error {
	r := &renderer{}
	for _, option := range options {
		option(r)
	}

	output := termenv.NewOutput(w, r.outputOptions...)

	_, err := io.WriteString(w, strings.Join(r.lines(output, g), "\n")+"\n")
	return err
}

// Lines returns the rendered board without colours.
func Lines(g othello.Game) []string {
	r := &renderer{}
	return r.lines(termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii)), g)
}

func (r *renderer) lines(output *termenv.Output, g othello.Game) []string {
	width, height := g.Width(), g.Height()
	board := g.Board()

	isMove := make([]bool, g.Size())
	if !r.hideMoves {
		for _, move := range g.Moves() {
			isMove[move] = true
		}
	}

	// Row labels are left aligned numbers followed by at least one space.
	labelWidth := len(strconv.Itoa(height)) + 1

	lines := make([]string, 0, height+3)

	header := "+" + strings.Repeat("-", labelWidth-2)
	for x := range width {
		header += "-" + columnLabel(board, x)
	}
	lines = append(lines, header+"-+")

	for y := range height {
		var line strings.Builder
		fmt.Fprintf(&line, "%-*d", labelWidth, y+1)

		for x := range width {
			index := board.Index(x, y)

			switch cell := board.GetIndex(index); {
			case cell == othello.CellOf(othello.PlayerOne):
				line.WriteString(output.String(playerOneSymbol).Foreground(termenv.ANSIBrightWhite).Bold().String())
			case cell == othello.CellOf(othello.PlayerTwo):
				line.WriteString(output.String(playerTwoSymbol).Foreground(termenv.ANSIBrightWhite).String())
			case isMove[index]:
				line.WriteString(output.String(moveSymbol).Foreground(termenv.ANSIGreen).String())
			default:
				line.WriteString(emptySymbol)
			}
			line.WriteString(" ")
		}

		lines = append(lines, line.String()+"|")
	}

	lines = append(lines, "+"+strings.Repeat("-", labelWidth-1+2*width)+"+")
	lines = append(lines, statusLine(g))

	return lines
}

// columnLabel returns the column letter used in field notation, or '-' when
// the board is too wide for letters.
func columnLabel(board othello.Board, x int) string {
	field := board.Field(board.Index(x, 0))
	if strings.HasPrefix(field, "#") {
		return "-"
	}
	return field[:1]
}

func statusLine(g othello.Game) string {
	one := g.Count(othello.PlayerOne)
	two := g.Count(othello.PlayerTwo)
	counts := fmt.Sprintf("%s %d - %d %s", othello.PlayerOne, one, two, othello.PlayerTwo)

	switch g.Status() {
	case othello.StatusToMove:
		return fmt.Sprintf("%s, %s to move", counts, g.Turn())
	case othello.StatusMustPass:
		return fmt.Sprintf("%s, %s must pass", counts, g.Turn())
	}

	if winner, ok := g.Winner(); ok {
		return fmt.Sprintf("%s, game over, %s wins", counts, winner)
	}
	return counts + ", game over, draw"
}
