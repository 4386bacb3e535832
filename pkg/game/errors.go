package game

import "errors"

var (
	// ErrInvalidChoice means the choice is not available from the session's
	// current scene. The session is left unchanged; callers should re-render
	// the current choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrSessionNotFound means no session exists for the given user.
	// Callers must create one first.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoPendingEvent means a continuation was requested with nothing
	// pending. ResolveContinuation recovers locally by re-entering the work
	// scene and returns this alongside the recovery so callers can notice.
	ErrNoPendingEvent = errors.New("no pending event")
)
