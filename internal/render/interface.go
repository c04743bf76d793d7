package render

import "github.com/adunn147/AudioExtractionTranscription/internal/domain"

// Renderer writes a transcript result to a formatted document.
type Renderer interface {
	Render(result domain.TranscriptResult, outputPath, title string) error
}
