package othello //nolint:testpackage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const startLayout = "--------\n" +
	"--------\n" +
	"----*---\n" +
	"---XO*--\n" +
	"--*OX---\n" +
	"---*----\n" +
	"--------\n" +
	"--------\n"

func TestGame_String(t *testing.T) {
	require.Equal(t, startLayout, NewGame().String())
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		turn     Player
		validate bool
		wantErr  error
	}{
		{
			name:     "start position validated",
			layout:   startLayout,
			turn:     PlayerOne,
			validate: true,
		},
		{
			name:     "no trailing newline",
			layout:   strings.TrimSuffix(startLayout, "\n"),
			turn:     PlayerOne,
			validate: true,
		},
		{
			name:     "windows line endings",
			layout:   strings.ReplaceAll(startLayout, "\n", "\r\n"),
			turn:     PlayerOne,
			validate: true,
		},
		{
			name:     "markers for wrong player",
			layout:   startLayout,
			turn:     PlayerTwo,
			validate: true,
			wantErr:  ErrMovesMismatch,
		},
		{
			name:     "markers for wrong player without validation",
			layout:   startLayout,
			turn:     PlayerTwo,
			validate: false,
		},
		{
			name:     "missing marker",
			layout:   strings.Replace(startLayout, "*", "-", 1),
			turn:     PlayerOne,
			validate: true,
			wantErr:  ErrMovesMismatch,
		},
		{
			name:     "too many rows",
			layout:   startLayout + "--------\n",
			turn:     PlayerOne,
			wantErr:  ErrMalformedLayout,
		},
		{
			name:     "too many columns",
			layout:   "---------\n",
			turn:     PlayerOne,
			wantErr:  ErrMalformedLayout,
		},
		{
			name:     "unknown character",
			layout:   "---.----\n",
			turn:     PlayerOne,
			wantErr:  ErrMalformedLayout,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := ParseGame(test.layout, test.turn, test.validate)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.turn, game.Turn())
			require.Equal(t, 4, game.CountOccupied())
		})
	}
}

func TestParseGame_ShortRows(t *testing.T) {
	game, err := ParseGame("X\n\n--O", PlayerOne, false)
	require.NoError(t, err)

	board := game.Board()
	require.Equal(t, CellOf(PlayerOne), board.Get(0, 0))
	require.Equal(t, CellOf(PlayerTwo), board.Get(2, 2))
	require.Equal(t, 2, board.CountOccupied())
}

func TestParseGame_MarkersAreEmpty(t *testing.T) {
	game, err := ParseGame(startLayout, PlayerOne, true)
	require.NoError(t, err)

	require.True(t, game.Equal(NewGame()))
}

func TestParseGame_MismatchMessage(t *testing.T) {
	_, err := ParseGame(strings.Replace(startLayout, "*", "-", 1), PlayerOne, true)
	require.EqualError(t, err, "possible moves do not match: marked [f4 c5 d6], computed [e3 f4 c5 d6]")
}

func TestParseGameSize(t *testing.T) {
	layout := "--*-\n-XO*\n*OX-\n-*--\n"

	game, err := ParseGameSize(layout, 4, 4, PlayerOne, true)
	require.NoError(t, err)
	require.Equal(t, layout, game.String())

	_, err = ParseGameSize(layout, 3, 4, PlayerOne, true)
	require.ErrorIs(t, err, ErrMalformedLayout)

	_, err = ParseGameSize(layout, 0, 4, PlayerOne, true)
	require.ErrorIs(t, err, ErrInvalidSize)
}
