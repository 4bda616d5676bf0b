package display

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi-solver/internal/othello"
)

func TestLines_Opening(t *testing.T) {
	expected := []string{
		"+-a-b-c-d-e-f-g-h-+",
		"1                 |",
		"2                 |",
		"3         ·       |",
		"4       ● ○ ·     |",
		"5     · ○ ●       |",
		"6       ·         |",
		"7                 |",
		"8                 |",
		"+-----------------+",
		"X 2 - 2 O, X to move",
	}

	require.Equal(t, expected, Lines(othello.NewGame()))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, othello.NewGame(), WithProfile(termenv.Ascii))
	require.NoError(t, err)

	require.Equal(t, strings.Join(Lines(othello.NewGame()), "\n")+"\n", buf.String())
}

func TestRender_WithoutMoves(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, othello.NewGame(), WithProfile(termenv.Ascii), WithoutMoves())
	require.NoError(t, err)
	require.NotContains(t, buf.String(), moveSymbol)
}

func TestRender_Colours(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, othello.NewGame(), WithProfile(termenv.ANSI))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "\x1b[")
}

func TestLines_SmallBoard(t *testing.T) {
	game, err := othello.NewGameSize(4, 4)
	require.NoError(t, err)

	lines := Lines(game)
	require.Len(t, lines, 4+3)
	require.Equal(t, "+-a-b-c-d-+", lines[0])
	require.Equal(t, "+---------+", lines[5])
}

func TestLines_Alignment(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		header        string
	}{
		{"two digit rows", 12, 12, "+--a-b-c-d-e-f-g-h-i-j-k-l-+"},
		{"too wide for letters", 30, 2, "+" + strings.Repeat("--", 30) + "-+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := othello.NewGameSize(tt.width, tt.height)
			require.NoError(t, err)

			lines := Lines(game)
			require.Equal(t, tt.header, lines[0])

			frame := lines[:len(lines)-1]
			for _, line := range frame {
				require.Equal(t, utf8.RuneCountInString(tt.header), utf8.RuneCountInString(line), line)
			}
		})
	}

	game, err := othello.NewGameSize(12, 12)
	require.NoError(t, err)

	lines := Lines(game)
	require.True(t, strings.HasPrefix(lines[1], "1  "))
	require.True(t, strings.HasPrefix(lines[10], "10 "))
	require.True(t, strings.HasPrefix(lines[12], "12 "))
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		turn   othello.Player
		want   string
	}{
		{"must pass", "OX", othello.PlayerOne, "X 1 - 1 O, X must pass"},
		{"winner", "XXX", othello.PlayerTwo, "X 3 - 0 O, game over, X wins"},
		{"draw", "X\n\n\n\n\n\n\n-------O", othello.PlayerOne, "X 1 - 1 O, game over, draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := othello.ParseGame(tt.layout, tt.turn, false)
			require.NoError(t, err)
			require.Equal(t, tt.want, statusLine(game))
		})
	}
}
