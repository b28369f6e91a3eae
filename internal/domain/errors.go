package domain

import "errors"

var (
	// ErrMalformedRepository is returned when a question file is missing or a
	// question block is incomplete. The whole load fails closed.
	ErrMalformedRepository = errors.New("question repository malformed")
	// ErrEmptyRepository is returned when a question file parses to zero questions.
	ErrEmptyRepository = errors.New("question repository empty")
	// ErrNoReplacement is returned when the replace lifeline exhausts its retry budget.
	ErrNoReplacement = errors.New("no replacement question available")
	// ErrLifelineUsed is returned when an already-consumed lifeline is invoked.
	ErrLifelineUsed = errors.New("lifeline already used")
	// ErrNoSavedProgress indicates there is no snapshot on disk to resume.
	ErrNoSavedProgress = errors.New("no saved progress")
	// ErrCorruptSave indicates the snapshot exists but could not be parsed.
	ErrCorruptSave = errors.New("saved progress corrupt")
)
