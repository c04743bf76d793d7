package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AudioFormat selects the container and codec of extracted audio.
type AudioFormat string

const (
	FormatMP3 AudioFormat = "mp3"
	FormatWAV AudioFormat = "wav"
)

// Valid reports whether the format is one of the supported targets.
func (f AudioFormat) Valid() bool {
	return f == FormatMP3 || f == FormatWAV
}

// ParseAudioFormat normalizes a user-supplied format string.
func ParseAudioFormat(s string) (AudioFormat, error) {
	f := AudioFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unsupported audio format %q (supported: mp3, wav)", s)
	}
	return f, nil
}

// Model identifies a Whisper model tier. Larger tiers trade speed for accuracy.
type Model string

const (
	ModelTiny   Model = "tiny"
	ModelBase   Model = "base"
	ModelSmall  Model = "small"
	ModelMedium Model = "medium"
	ModelLarge  Model = "large"
)

// Models lists the supported tiers from fastest to most accurate.
func Models() []Model {
	return []Model{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

// Valid reports whether the model names a supported tier.
func (m Model) Valid() bool {
	switch m {
	case ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge:
		return true
	default:
		return false
	}
}

// Description returns a short speed/accuracy hint for the tier.
func (m Model) Description() string {
	switch m {
	case ModelTiny:
		return "Fastest, least accurate"
	case ModelBase:
		return "Good balance of speed and accuracy"
	case ModelSmall:
		return "Better accuracy, slower"
	case ModelMedium:
		return "High accuracy, much slower"
	case ModelLarge:
		return "Highest accuracy, very slow"
	default:
		return "Unknown model"
	}
}

// ParseModel normalizes a user-supplied model name.
func ParseModel(s string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unsupported model %q (supported: tiny, base, small, medium, large)", s)
	}
	return m, nil
}

// TranscriptSegment is a contiguous span of transcript text with time offsets
// in seconds. Segments are emitted in chronological order.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptResult is the output of one transcription run.
type TranscriptResult struct {
	Text     string              `json:"text"`
	Language string              `json:"language"`
	Duration float64             `json:"duration"`
	Segments []TranscriptSegment `json:"segments"`
}

// ProcessingRequest describes one pipeline run. Any front-end (CLI, watcher)
// maps its own controls onto this structure.
type ProcessingRequest struct {
	VideoPath    string
	OutputDir    string
	ExtractAudio bool
	AudioFormat  AudioFormat
	Transcribe   bool
	Model        Model
}

// BaseName returns the video filename without directory or extension,
// used as the stem for all output artifacts.
func (r ProcessingRequest) BaseName() string {
	base := filepath.Base(r.VideoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
