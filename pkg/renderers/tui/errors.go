package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoQuestions is returned when a session starts with an empty quiz.
	ErrNoQuestions = errors.New("tui: quiz has no questions")
)
