package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
)

func TestWriteRejectsEmptyTranscript(t *testing.T) {
	s := New([]string{"key-1"}, "", logger.New("error"))

	err := s.Write(context.Background(), domain.TranscriptResult{Text: "   \n  "}, t.TempDir()+"/out.md", "talk")
	if err == nil {
		t.Fatal("expected error for empty transcript")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCallGeminiNoKeys(t *testing.T) {
	s := &implSummarizer{model: "gemini-2.5-flash", logger: logger.New("error")}

	_, err := s.callGemini(context.Background(), "some transcript")
	if err == nil {
		t.Fatal("expected error when no API keys are configured")
	}
}

func TestRotateKeyWraps(t *testing.T) {
	s := &implSummarizer{apiKeys: []string{"a", "b", "c"}}

	for _, want := range []int{1, 2, 0, 1} {
		s.rotateKey()
		if s.currentKey != want {
			t.Fatalf("currentKey = %d, want %d", s.currentKey, want)
		}
	}
}
