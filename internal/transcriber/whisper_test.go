package transcriber

import (
	"context"
	"errors"
	"testing"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
)

// fakeExecutor feeds scripted stdout lines to the Stream callback.
type fakeExecutor struct {
	lines []string
	err   error
	name  string
	args  []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", f.err
}

func (f *fakeExecutor) Stream(ctx context.Context, onLine func(string), name string, args ...string) error {
	f.name = name
	f.args = append([]string{}, args...)
	for _, line := range f.lines {
		onLine(line)
	}
	return f.err
}

func testLogger() logger.Logger {
	return logger.New("error")
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{"model loaded", `{"event":"model_loaded","model":"base"}`, "model_loaded", false},
		{"result", `{"event":"result","text":"hi","language":"en"}`, "result", false},
		{"blank line", "", "", true},
		{"progress noise", "100%|### 45.2MiB/s", "", true},
		{"json without event", `{"foo":"bar"}`, "", true},
		{"broken json", `{"event":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decodeEvent(tt.line)
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && ev.Event != tt.want {
				t.Errorf("event = %q, want %q", ev.Event, tt.want)
			}
		})
	}
}

func TestTranscribeAssemblesResult(t *testing.T) {
	exec := &fakeExecutor{
		lines: []string{
			`{"event":"model_loaded","model":"base"}`,
			`{"event":"result","text":"hello world","language":"en","duration":4.5,"segments":[` +
				`{"start":0,"end":2.1,"text":" hello"},{"start":2.1,"end":4.5,"text":" world"}]}`,
		},
	}
	tr := New("python3", exec, testLogger())

	var stages []string
	result, err := tr.Transcribe(context.Background(), Request{
		AudioPath: "/tmp/a.wav",
		Model:     domain.ModelBase,
		OnStage:   func(stage string) { stages = append(stages, stage) },
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if result.Text != "hello world" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Language != "en" {
		t.Errorf("language = %q", result.Language)
	}
	if result.Duration != 4.5 {
		t.Errorf("duration = %v", result.Duration)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(result.Segments))
	}
	if result.Segments[1].Start != 2.1 || result.Segments[1].End != 4.5 {
		t.Errorf("segment 1 = %+v", result.Segments[1])
	}

	if len(stages) != 1 || stages[0] != StageModelLoaded {
		t.Errorf("stages = %v, want [model_loaded]", stages)
	}
	if exec.name != "python3" {
		t.Errorf("interpreter = %q", exec.name)
	}
}

func TestTranscribeHelperError(t *testing.T) {
	exec := &fakeExecutor{
		lines: []string{`{"event":"error","message":"model download failed"}`},
		err:   errors.New("exit status 1"),
	}
	tr := New("python3", exec, testLogger())

	_, err := tr.Transcribe(context.Background(), Request{AudioPath: "/tmp/a.wav", Model: domain.ModelTiny})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrWhisperUnavailable) {
		t.Error("generic helper failure should not be a missing-dependency error")
	}
}

func TestTranscribeWhisperUnavailable(t *testing.T) {
	exec := &fakeExecutor{
		lines: []string{`{"event":"error","message":"openai-whisper is not installed"}`},
		err:   errors.New("exit status 3"),
	}
	tr := New("python3", exec, testLogger())

	_, err := tr.Transcribe(context.Background(), Request{AudioPath: "/tmp/a.wav", Model: domain.ModelTiny})
	if !errors.Is(err, ErrWhisperUnavailable) {
		t.Errorf("error = %v, want ErrWhisperUnavailable", err)
	}
}

func TestTranscribeNoResult(t *testing.T) {
	exec := &fakeExecutor{lines: []string{`{"event":"model_loaded","model":"tiny"}`}}
	tr := New("python3", exec, testLogger())

	_, err := tr.Transcribe(context.Background(), Request{AudioPath: "/tmp/a.wav", Model: domain.ModelTiny})
	if err == nil {
		t.Fatal("expected error when helper exits without a result")
	}
}
