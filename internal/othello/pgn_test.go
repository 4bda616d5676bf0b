package othello //nolint:testpackage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const samplePGN = `[Event "club night"]
[Site "local"]
[Date "2024.03.01"]
[Time "19:30:00"]
[Black "alice"]
[White "bob"]
[BlackElo "1800"]
[WhiteRating "1650"]
[Result "40-24"]

1. e3 f3 2. g3 c4
3. c3 d3 *
`

func TestParsePGN(t *testing.T) {
	pgn, err := ParsePGN(samplePGN)
	require.NoError(t, err)

	metadata := pgn.Metadata
	require.Equal(t, "local", metadata.Site)
	require.Equal(t, time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC), metadata.Date)
	require.Equal(t, PGNPlayer{Name: "alice", Rating: 1800}, metadata.Player(PlayerOne))
	require.Equal(t, PGNPlayer{Name: "bob", Rating: 1650}, metadata.Player(PlayerTwo))
	require.Equal(t, "club night", metadata.Tags["Event"])

	winner, ok := metadata.Winner()
	require.True(t, ok)
	require.Equal(t, PlayerOne, winner)

	board := NewBoard()
	var fields []string
	for _, move := range pgn.Moves {
		fields = append(fields, board.Field(move))
	}
	require.Equal(t, []string{"e3", "f3", "g3", "c4", "c3", "d3"}, fields)

	game, err := pgn.Game(-1)
	require.NoError(t, err)
	require.Equal(t, 5, game.Count(PlayerOne))
	require.Equal(t, 5, game.Count(PlayerTwo))
	require.Equal(t, PlayerOne, game.Turn())

	partial, err := pgn.Game(2)
	require.NoError(t, err)
	expected, err := NewGameFromMoves(pgn.Moves[:2])
	require.NoError(t, err)
	require.True(t, expected.Equal(partial))

	all, err := pgn.Game(100)
	require.NoError(t, err)
	require.True(t, game.Equal(all))
}

func TestParsePGN_NoMetadata(t *testing.T) {
	pgn, err := ParsePGN("e3 f3\n")
	require.NoError(t, err)
	require.Len(t, pgn.Moves, 2)
	require.Empty(t, pgn.Metadata.Site)
	require.True(t, pgn.Metadata.Date.IsZero())

	_, ok := pgn.Metadata.Winner()
	require.False(t, ok)
}

func TestParsePGN_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad tag", "[Site local]\ne3\n"},
		{"bad rating", "[BlackElo \"strong\"]\ne3\n"},
		{"bad date", "[Date \"yesterday\"]\ne3\n"},
		{"bad move", "e3 z9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePGN(tt.text)
			require.ErrorIs(t, err, ErrMalformedPGN)
		})
	}

	_, err := ParseMoves("e3 z9")
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestNewGameFromMoves(t *testing.T) {
	explicit, err := ParseMoves("e3 f3 g3 g2 c5 h3 h1 f1 -- d3")
	require.NoError(t, err)
	require.Contains(t, explicit, PassMove)

	implicit, err := ParseMoves("e3 f3 g3 g2 c5 h3 h1 f1 d3")
	require.NoError(t, err)

	withPass, err := NewGameFromMoves(explicit)
	require.NoError(t, err)

	autoPass, err := NewGameFromMoves(implicit)
	require.NoError(t, err)

	require.True(t, withPass.Equal(autoPass))
	require.Equal(t, 6, withPass.Count(PlayerOne))
	require.Equal(t, 7, withPass.Count(PlayerTwo))
	require.Equal(t, PlayerOne, withPass.Turn())
}

func TestNewGameFromMoves_Errors(t *testing.T) {
	_, err := NewGameFromMoves([]int{0})
	require.ErrorIs(t, err, ErrInvalidMove)

	_, err = NewGameFromMoves([]int{PassMove})
	require.ErrorIs(t, err, ErrPassNotAllowed)
}
