package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Field converts an index to field notation such as "c4": a column letter
// followed by the 1-based row. Indexes outside the board are returned as "#<index>".
func (b Board) Field(index int) string {
	if index == PassMove {
		return "--"
	}

	if index < 0 || index >= b.Size() || b.width > 26 {
		return fmt.Sprintf("#%d", index)
	}

	x, y := b.Coords(index)
	return fmt.Sprintf("%c%d", 'a'+x, y+1)
}

// FieldToIndex converts field notation (e.g. "a1", "h8") to an index.
// PassMove is returned if the field is "--", "ps" or "pa".
func (b Board) FieldToIndex(field string) (int, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	if len(field) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	x := int(field[0]) - 'a'
	y, err := strconv.Atoi(field[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	y--

	if !b.OnBoard(x, y) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return b.Index(x, y), nil
}
