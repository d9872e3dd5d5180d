// Package synth abstracts the text-to-speech backends. The generator only
// sees the Engine interface, so backends can be swapped or mocked.
package synth

import (
	"context"
	"fmt"
)

// Request carries everything a backend needs for one synthesis call.
type Request struct {
	// Text is the phrase to speak.
	Text string
	// Language is the two-letter language code ("ru", "uk", "en").
	Language string
	// Voice is the backend-specific voice identifier, where applicable.
	Voice string
	// TLD is a regional endpoint hint for backends that support one.
	TLD string
}

// Engine is a text-to-speech backend. Synthesize returns encoded audio
// (MP3) ready to be written to disk. Implementations process one request at
// a time; calls block until the backend returns.
type Engine interface {
	// Name returns the engine identifier used in config and flags.
	Name() string

	// Synthesize converts text to audio bytes. Failures are recoverable:
	// the caller logs them and continues with the next item.
	Synthesize(ctx context.Context, req Request) ([]byte, error)

	// Validate checks that the backend is usable. It is called once at
	// startup; an error here aborts the run before any work is done.
	Validate() error
}

// New creates the engine registered under name.
func New(name string, cfg Config) (Engine, error) {
	switch name {
	case "gtts":
		return NewGTTS(cfg.GTTS), nil
	case "edge":
		return NewEdge(), nil
	case "mock":
		return NewMock(), nil
	}
	return nil, fmt.Errorf("%w: %q (available: gtts, edge, mock)", ErrUnknownEngine, name)
}

// Config aggregates per-backend settings.
type Config struct {
	GTTS GTTSConfig
}

// EngineNames lists the selectable engines.
func EngineNames() []string {
	return []string{"gtts", "edge", "mock"}
}
