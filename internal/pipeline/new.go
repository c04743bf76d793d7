package pipeline

import (
	"sync/atomic"

	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
	"github.com/adunn147/AudioExtractionTranscription/internal/render"
	"github.com/adunn147/AudioExtractionTranscription/internal/summary"
	"github.com/adunn147/AudioExtractionTranscription/internal/transcoder"
	"github.com/adunn147/AudioExtractionTranscription/internal/transcriber"
)

type implPipeline struct {
	transcoder  transcoder.Transcoder
	transcriber transcriber.Transcriber
	renderer    render.Renderer
	summarizer  summary.Summarizer
	logger      logger.Logger
	events      *EventBus
	busy        atomic.Bool
}

// New creates a Pipeline. Any collaborator may be nil; a request needing a
// missing one fails fast with a missing-dependency error. The summarizer is
// always optional.
func New(tc transcoder.Transcoder, tr transcriber.Transcriber, rd render.Renderer, sm summary.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		transcoder:  tc,
		transcriber: tr,
		renderer:    rd,
		summarizer:  sm,
		logger:      log,
		events:      NewEventBus(200),
	}
}
