package apperror

import "errors"

var (
	ErrNoCursorFound     = errors.New("no cursor found on the board")
	ErrMoveRejected      = errors.New("that did not work")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrOffGrid           = errors.New("position is outside the board")
	ErrUnknownInput      = errors.New("unknown input")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnsupportedAIMode = errors.New("unsupported ai mode")
)
