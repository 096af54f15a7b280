package app

import "errors"

// Errors returned by the application.
var (
	// ErrQuit signals a user-requested exit from the event loop.
	ErrQuit = errors.New("quit requested")
)
