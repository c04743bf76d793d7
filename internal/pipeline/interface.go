package pipeline

import (
	"context"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Pipeline runs the extract/transcribe/render sequence for one request at a
// time. A second Run while one is in flight fails immediately.
type Pipeline interface {
	Run(ctx context.Context, req domain.ProcessingRequest) error
	Events() *EventBus
}
