package transcoder

import (
	"context"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Transcoder extracts a standalone audio file from a video container.
type Transcoder interface {
	// Extract writes {baseName}.{format} into outputDir and returns its path.
	Extract(ctx context.Context, videoPath, outputDir, baseName string, format domain.AudioFormat) (string, error)
}
