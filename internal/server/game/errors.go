package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrWrongScreen  = errors.New("wrong screen")
)
