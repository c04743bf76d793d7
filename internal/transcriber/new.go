package transcriber

import (
	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
	"github.com/adunn147/AudioExtractionTranscription/pkg/executor"
)

type implWhisper struct {
	pythonPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Transcriber that drives the openai-whisper library through
// an embedded python helper script.
func New(pythonPath string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		pythonPath: pythonPath,
		executor:   exec,
		logger:     log,
	}
}
