package synth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	htgotts "github.com/hegedustibor/htgo-tts"
	"golang.org/x/time/rate"
)

// gttsMaxTextSize is Google's effective per-request text limit.
const gttsMaxTextSize = 5000

// GTTSEngine synthesizes speech through the free Google Translate TTS
// endpoint via htgo-tts. Requests are rate limited to avoid being blocked.
//
// The endpoint is pinned to translate.google.com by htgo-tts, so the
// Request.TLD hint is accepted but not applied.
type GTTSEngine struct {
	tempDir string
	limiter *rate.Limiter
}

// GTTSConfig holds configuration for the Google Translate TTS engine.
type GTTSConfig struct {
	// TempDir for intermediate files. Defaults to the system temp dir.
	TempDir string

	// RequestsPerMinute caps the request rate. Defaults to 50.
	RequestsPerMinute int
}

// NewGTTS creates a Google Translate TTS engine.
func NewGTTS(cfg GTTSConfig) *GTTSEngine {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 50
	}
	return &GTTSEngine{
		tempDir: cfg.TempDir,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
	}
}

// Name implements Engine.
func (e *GTTSEngine) Name() string { return "gtts" }

// Synthesize fetches an MP3 clip for req.Text in req.Language.
func (e *GTTSEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if len(req.Text) > gttsMaxTextSize {
		return nil, fmt.Errorf("%w: %d characters (max %d)", ErrTextTooLong, len(req.Text), gttsMaxTextSize)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	// htgo-tts writes straight to disk, so synthesize into a scratch
	// directory and hand the bytes back to the caller.
	dir, err := os.MkdirTemp(e.tempDir, "beadvoice-gtts-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	speech := htgotts.Speech{Folder: dir, Language: req.Language}
	path, err := speech.CreateSpeechFile(req.Text, "clip")
	if err != nil {
		return nil, fmt.Errorf("gtts synthesis failed: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized clip: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoAudio
	}
	return data, nil
}

// Validate performs a test synthesis to confirm the endpoint is reachable.
func (e *GTTSEngine) Validate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	if _, err := e.Synthesize(ctx, Request{Text: "test", Language: "en"}); err != nil {
		return fmt.Errorf("%w: test synthesis failed: %v\n\nThe gtts engine needs network access to translate.google.com; check your connection or switch engines with --engine", ErrEngineNotAvailable, err)
	}
	return nil
}

var _ Engine = (*GTTSEngine)(nil)
