package othello

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrPassNotAllowed  = errors.New("pass not allowed, player has moves")
	ErrMalformedLayout = errors.New("malformed layout")
	ErrMovesMismatch   = errors.New("possible moves do not match")
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidField    = errors.New("invalid field")
)
