package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
	"github.com/adunn147/AudioExtractionTranscription/internal/transcriber"
)

// Run executes one processing request. Steps are strictly sequential: audio
// extraction, transcription, document rendering. A temporary audio artifact
// created for transcription is removed on the way out, success or failure.
func (p *implPipeline) Run(ctx context.Context, req domain.ProcessingRequest) error {
	if !p.busy.CompareAndSwap(false, true) {
		return &Error{
			Kind:    KindBusy,
			Step:    "start",
			Message: "a processing run is already in flight",
		}
	}
	defer p.busy.Store(false)

	runID := uuid.New().String()
	p.logger.Info(ctx, "Starting processing run %s: %s", runID, req.VideoPath)

	if err := validate(req); err != nil {
		return p.fail(ctx, runID, "validate", KindInvalidInput, err)
	}
	if err := p.checkCollaborators(req); err != nil {
		return p.fail(ctx, runID, "validate", KindMissingDependency, err)
	}

	base := req.BaseName()
	var audioPath string

	if req.ExtractAudio {
		p.publish(runID, domain.StatusExtractingAudio, "Extracting audio...")
		path, err := p.transcoder.Extract(ctx, req.VideoPath, req.OutputDir, base, req.AudioFormat)
		if err != nil {
			return p.fail(ctx, runID, "extract_audio", KindTranscode, err)
		}
		audioPath = path
	}

	if req.Transcribe {
		if audioPath == "" {
			p.publish(runID, domain.StatusPreparingAudio, "Extracting audio for transcription...")
			path, err := p.transcoder.Extract(ctx, req.VideoPath, req.OutputDir, base+"_temp", domain.FormatWAV)
			if err != nil {
				return p.fail(ctx, runID, "prepare_audio", KindTranscode, err)
			}
			audioPath = path
			defer p.removeTempArtifact(ctx, path)
		}

		p.publish(runID, domain.StatusLoadingModel, fmt.Sprintf("Loading model: %s", req.Model))
		result, err := p.transcriber.Transcribe(ctx, transcriber.Request{
			AudioPath: audioPath,
			Model:     req.Model,
			OnStage: func(stage string) {
				if stage == transcriber.StageModelLoaded {
					p.publish(runID, domain.StatusTranscribing, "Transcribing audio...")
				}
			},
		})
		if err != nil {
			kind := KindTranscription
			if errors.Is(err, transcriber.ErrWhisperUnavailable) {
				kind = KindMissingDependency
			}
			return p.fail(ctx, runID, "transcribe", kind, err)
		}

		p.publish(runID, domain.StatusRendering, "Writing transcript document...")
		docPath := filepath.Join(req.OutputDir, base+"_transcript.docx")
		if err := p.renderer.Render(result, docPath, "Transcript: "+base); err != nil {
			// Extraction and transcription already succeeded; their
			// artifacts stay on disk.
			return p.fail(ctx, runID, "render", KindRender, err)
		}
		p.logger.Info(ctx, "Transcript document written: %s", docPath)

		if p.summarizer != nil {
			p.publish(runID, domain.StatusSummarizing, "Generating summary...")
			summaryPath := filepath.Join(req.OutputDir, base+"_summary.md")
			if err := p.summarizer.Write(ctx, result, summaryPath, base); err != nil {
				p.logger.Warn(ctx, "Summary generation failed: %v", err)
			}
		}
	}

	p.publish(runID, domain.StatusCompleted, "Processing completed successfully")
	p.logger.Info(ctx, "Run %s completed", runID)
	return nil
}

// Events returns the status notification bus for this pipeline.
func (p *implPipeline) Events() *EventBus {
	return p.events
}

func validate(req domain.ProcessingRequest) error {
	if !req.ExtractAudio && !req.Transcribe {
		return fmt.Errorf("no operation selected: enable audio extraction, transcription, or both")
	}
	if req.VideoPath == "" {
		return fmt.Errorf("video path is required")
	}
	if _, err := os.Stat(req.VideoPath); err != nil {
		return fmt.Errorf("video file does not exist: %s", req.VideoPath)
	}
	if req.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return fmt.Errorf("output directory is not usable: %w", err)
	}
	if req.ExtractAudio && !req.AudioFormat.Valid() {
		return fmt.Errorf("unsupported audio format %q", req.AudioFormat)
	}
	if req.Transcribe && !req.Model.Valid() {
		return fmt.Errorf("unsupported model %q", req.Model)
	}
	return nil
}

// checkCollaborators fails fast when a requested operation has no backend.
func (p *implPipeline) checkCollaborators(req domain.ProcessingRequest) error {
	if (req.ExtractAudio || req.Transcribe) && p.transcoder == nil {
		return fmt.Errorf("audio extraction is unavailable: no media transcoder configured")
	}
	if req.Transcribe && p.transcriber == nil {
		return fmt.Errorf("transcription is unavailable: no speech transcriber configured")
	}
	if req.Transcribe && p.renderer == nil {
		return fmt.Errorf("transcription is unavailable: no document renderer configured")
	}
	return nil
}

// removeTempArtifact best-effort deletes the temporary audio file.
// Failures are logged, never escalated.
func (p *implPipeline) removeTempArtifact(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to remove temporary audio file %s: %v", path, err)
		return
	}
	p.logger.Debug(ctx, "Removed temporary audio file: %s", path)
}

func (p *implPipeline) publish(runID string, status domain.Status, message string) {
	p.events.Publish(Event{
		RunID:   runID,
		Status:  status,
		Message: message,
	})
}

func (p *implPipeline) fail(ctx context.Context, runID, step string, kind ErrorKind, err error) error {
	e := &Error{
		Kind:    kind,
		Step:    step,
		Message: failureMessage(kind),
		Err:     err,
	}
	p.logger.Error(ctx, "Run %s failed at %s: %v", runID, step, err)
	p.events.Publish(Event{
		RunID:   runID,
		Status:  domain.StatusFailed,
		Message: e.Message,
		Error:   e.Error(),
	})
	return e
}

func failureMessage(kind ErrorKind) string {
	switch kind {
	case KindInvalidInput:
		return "invalid processing request"
	case KindMissingDependency:
		return "required dependency is missing"
	case KindTranscode:
		return "audio extraction failed"
	case KindTranscription:
		return "transcription failed"
	case KindRender:
		return "transcript document generation failed"
	default:
		return "processing failed"
	}
}
