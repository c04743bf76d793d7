package summary

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

const summaryPrompt = `You are an expert at analyzing spoken-word recordings. Based on the transcript below, write a concise summary.

Requirements:
- Start with a one-sentence overview of the recording's topic
- List the main points in the order they appear
- Call out any decisions, action items, or warnings
- Use markdown: headings, bullet points, bold for key terms

Transcript:
---
%s
---`

// Write summarizes the transcript via Gemini and writes a markdown file.
func (s *implSummarizer) Write(ctx context.Context, result domain.TranscriptResult, outputPath, title string) error {
	if strings.TrimSpace(result.Text) == "" {
		return fmt.Errorf("transcript is empty, nothing to summarize")
	}

	s.logger.Info(ctx, "Summarizing transcript: %s", title)

	summaryText, err := s.callGemini(ctx, result.Text)
	if err != nil {
		return fmt.Errorf("summarize transcript: %w", err)
	}

	md := fmt.Sprintf("# Summary: %s\n\n_%s_\n\n%s\n",
		title,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summaryText),
	)

	if err := os.WriteFile(outputPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary file: %w", err)
	}

	s.logger.Info(ctx, "Summary written: %s", outputPath)
	return nil
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
