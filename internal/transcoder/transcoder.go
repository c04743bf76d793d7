package transcoder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Extract pulls the audio track out of a video file as mono 16kHz audio.
// That format is what Whisper expects, and mono keeps files small.
func (t *implTranscoder) Extract(ctx context.Context, videoPath, outputDir, baseName string, format domain.AudioFormat) (string, error) {
	audioPath := filepath.Join(outputDir, baseName+"."+string(format))

	t.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	// -vn: drop the video stream
	// -acodec: lossy mp3 encoder or uncompressed PCM depending on target
	// -ar 16000 -ac 1: 16kHz mono
	// -y: overwrite existing output
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", codecFor(format),
		"-ar", "16000",
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.ffmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("ffmpeg completed but output file is missing: %s: %w", audioPath, err)
	}

	t.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

func codecFor(format domain.AudioFormat) string {
	if format == domain.FormatMP3 {
		return "libmp3lame"
	}
	return "pcm_s16le"
}
