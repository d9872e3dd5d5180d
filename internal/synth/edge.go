package synth

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pp-group/edge-tts-go/biz/service/tts/edge"
)

// EdgeEngine synthesizes speech through the Microsoft Edge neural TTS
// service via edge-tts-go. The service streams MP3 chunks over a websocket;
// the chunks are concatenated into a single clip.
type EdgeEngine struct{}

// NewEdge creates an Edge neural TTS engine.
func NewEdge() *EdgeEngine {
	return &EdgeEngine{}
}

// Name implements Engine.
func (e *EdgeEngine) Name() string { return "edge" }

// Synthesize fetches an MP3 clip for req.Text spoken by req.Voice.
func (e *EdgeEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if req.Voice == "" {
		return nil, fmt.Errorf("edge synthesis: no voice configured for language %q", req.Language)
	}

	comm, err := edge.NewCommunicate(req.Text, edge.WithVoice(req.Voice))
	if err != nil {
		return nil, fmt.Errorf("edge synthesis setup failed: %w", err)
	}

	ch, err := comm.Stream()
	if err != nil {
		return nil, fmt.Errorf("edge synthesis stream failed: %w", err)
	}

	var buf bytes.Buffer
	for msg := range ch {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		// Stream() yields maps; entries with type=="audio" carry MP3 data.
		if msgType, ok := msg["type"].(string); ok && msgType == "audio" {
			if data, ok := msg["data"].([]byte); ok {
				buf.Write(data)
			}
		}
	}

	if buf.Len() == 0 {
		return nil, ErrNoAudio
	}
	return buf.Bytes(), nil
}

// Validate confirms the client can be constructed. Network reachability is
// only known per request; a failing service surfaces as recoverable
// per-item errors.
func (e *EdgeEngine) Validate() error {
	if _, err := edge.NewCommunicate("test", edge.WithVoice("en-US-JennyNeural")); err != nil {
		return fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}
	return nil
}

var _ Engine = (*EdgeEngine)(nil)
