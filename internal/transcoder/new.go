package transcoder

import (
	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
	"github.com/adunn147/AudioExtractionTranscription/pkg/executor"
)

type implTranscoder struct {
	ffmpegPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Transcoder backed by the ffmpeg binary at ffmpegPath.
func New(ffmpegPath string, exec executor.Executor, log logger.Logger) Transcoder {
	return &implTranscoder{
		ffmpegPath: ffmpegPath,
		executor:   exec,
		logger:     log,
	}
}
