package domain

import "errors"

// Domain errors
var (
	ErrAlreadyStarted     = errors.New("game already started")
	ErrSessionEnded       = errors.New("session has ended")
	ErrNotAllReady        = errors.New("not all players are ready")
	ErrNoPlayers          = errors.New("no players in session")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrNotEnoughQuestions = errors.New("not enough questions for the requested difficulty levels")
	ErrInvalidConfig      = errors.New("invalid game configuration")
)
