package transcriber

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

//go:embed assets/whisper_runner.py
var runnerScript []byte

// ErrWhisperUnavailable indicates the openai-whisper library is not
// importable by the configured python interpreter.
var ErrWhisperUnavailable = errors.New("openai-whisper is not available")

// helperEvent is one NDJSON line emitted by the python helper.
type helperEvent struct {
	Event    string  `json:"event"`
	Message  string  `json:"message"`
	Model    string  `json:"model"`
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs the embedded helper script and assembles its result.
// Model loading happens inside the helper; the model_loaded event marks the
// boundary between loading and inference.
func (w *implWhisper) Transcribe(ctx context.Context, req Request) (domain.TranscriptResult, error) {
	scriptPath, err := w.writeHelperScript()
	if err != nil {
		return domain.TranscriptResult{}, err
	}
	defer os.Remove(scriptPath)

	w.logger.Info(ctx, "Transcribing %s with model %q", req.AudioPath, req.Model)

	var result domain.TranscriptResult
	var helperErr error
	gotResult := false

	args := []string{scriptPath, "--audio", req.AudioPath, "--model", string(req.Model)}
	streamErr := w.executor.Stream(ctx, func(line string) {
		ev, err := decodeEvent(line)
		if err != nil {
			w.logger.Debug(ctx, "Ignoring non-event helper output: %s", line)
			return
		}

		switch ev.Event {
		case "model_loaded":
			w.logger.Info(ctx, "Model loaded: %s", ev.Model)
			if req.OnStage != nil {
				req.OnStage(StageModelLoaded)
			}
		case "result":
			result = eventResult(ev)
			gotResult = true
		case "error":
			helperErr = helperError(ev.Message)
		}
	}, w.pythonPath, args...)

	if helperErr != nil {
		return domain.TranscriptResult{}, fmt.Errorf("whisper transcribe: %w", helperErr)
	}
	if streamErr != nil {
		return domain.TranscriptResult{}, fmt.Errorf("whisper transcribe: %w", streamErr)
	}
	if !gotResult {
		return domain.TranscriptResult{}, fmt.Errorf("whisper transcribe: helper produced no result")
	}

	w.logger.Info(ctx, "Transcription completed: %d segments, language %q", len(result.Segments), result.Language)
	return result, nil
}

// writeHelperScript materializes the embedded helper for the interpreter.
func (w *implWhisper) writeHelperScript() (string, error) {
	scriptPath := filepath.Join(os.TempDir(), "whisper_runner.py")
	if err := os.WriteFile(scriptPath, runnerScript, 0o755); err != nil {
		return "", fmt.Errorf("write helper script: %w", err)
	}
	return scriptPath, nil
}

func decodeEvent(line string) (helperEvent, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.HasPrefix(trimmed, "{") {
		return helperEvent{}, fmt.Errorf("not a helper event")
	}

	var ev helperEvent
	if err := json.Unmarshal([]byte(trimmed), &ev); err != nil {
		return helperEvent{}, err
	}
	if ev.Event == "" {
		return helperEvent{}, fmt.Errorf("missing event field")
	}
	return ev, nil
}

func eventResult(ev helperEvent) domain.TranscriptResult {
	result := domain.TranscriptResult{
		Text:     ev.Text,
		Language: ev.Language,
		Duration: ev.Duration,
	}
	for _, s := range ev.Segments {
		result.Segments = append(result.Segments, domain.TranscriptSegment{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}
	return result
}

func helperError(message string) error {
	if strings.Contains(message, "not installed") {
		return fmt.Errorf("%s: %w", message, ErrWhisperUnavailable)
	}
	return errors.New(message)
}
