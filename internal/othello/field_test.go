package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard_Field(t *testing.T) {
	board := NewBoard()

	require.Equal(t, "a1", board.Field(0))
	require.Equal(t, "h1", board.Field(7))
	require.Equal(t, "a2", board.Field(8))
	require.Equal(t, "h8", board.Field(63))
	require.Equal(t, "--", board.Field(PassMove))
	require.Equal(t, "#64", board.Field(64))
}

func TestBoard_FieldToIndex(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		field   string
		want    int
		wantErr bool
	}{
		{field: "a1", want: 0},
		{field: "H8", want: 63},
		{field: "e3", want: 20},
		{field: "ps", want: PassMove},
		{field: "--", want: PassMove},
		{field: "i1", wantErr: true},
		{field: "a9", wantErr: true},
		{field: "a0", wantErr: true},
		{field: "a", wantErr: true},
		{field: "ax", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			index, err := board.FieldToIndex(test.field)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidField)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, index)
		})
	}
}

func TestBoard_FieldRoundTrip(t *testing.T) {
	board, err := NewBoardSize(10, 12)
	require.NoError(t, err)

	for index := range board.Size() {
		got, err := board.FieldToIndex(board.Field(index))
		require.NoError(t, err)
		require.Equal(t, index, got)
	}
}
