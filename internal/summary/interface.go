package summary

import (
	"context"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Summarizer produces an LLM-generated markdown summary of a transcript.
type Summarizer interface {
	Write(ctx context.Context, result domain.TranscriptResult, outputPath, title string) error
}
