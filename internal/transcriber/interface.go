package transcriber

import (
	"context"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Stage names reported by the transcription backend during a run.
const (
	StageModelLoaded = "model_loaded"
)

// Request describes one transcription call.
type Request struct {
	AudioPath string
	Model     domain.Model
	// OnStage receives backend progress notifications (e.g. model loaded).
	OnStage func(stage string)
}

// Transcriber converts an audio file into text with time-aligned segments.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (domain.TranscriptResult, error)
}
