package synth

import "errors"

// Common errors for the synthesis backends.
var (
	// ErrUnknownEngine means the requested engine name is not registered.
	// This is a setup error: the process aborts before any work.
	ErrUnknownEngine = errors.New("unknown TTS engine")

	// ErrEngineNotAvailable means the backend failed its startup check.
	ErrEngineNotAvailable = errors.New("TTS engine is not available")

	// ErrEmptyText means synthesis was requested for an empty phrase.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrTextTooLong means the phrase exceeds the backend's text limit.
	ErrTextTooLong = errors.New("text too long")

	// ErrNoAudio means the backend returned successfully but produced no
	// audio data.
	ErrNoAudio = errors.New("backend produced no audio data")
)
