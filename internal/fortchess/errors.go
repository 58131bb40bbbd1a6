package fortchess

import "errors"

var (
	ErrIllegalPosition       = errors.New("illegal position")
	ErrIndexOutOfBounds      = errors.New("piece index out of bounds")
	ErrIllegalPlayerIndex    = errors.New("player index out of bounds")
	ErrInvalidQuadrantIndex  = errors.New("invalid quadrant index")
	ErrPositionNotInQuadrant = errors.New("position not in a quadrant")
	ErrInvalidNameLength     = errors.New("invalid name length")
	ErrMoreThanOneWinner     = errors.New("more than one winner")
	ErrTooManyPlayers        = errors.New("too many players")
	ErrTooFewPlayers         = errors.New("too few players")
	ErrDuplicateTeam         = errors.New("team already taken")
	ErrDefenderCount         = errors.New("game needs exactly one defender")
	ErrPieceNotFound         = errors.New("no piece at position")
	ErrNothingPicked         = errors.New("no piece picked")
	ErrIllegalMove           = errors.New("illegal move")
	ErrGameOver              = errors.New("game over")
)
