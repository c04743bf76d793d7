package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adunn147/AudioExtractionTranscription/internal/config"
	"github.com/adunn147/AudioExtractionTranscription/internal/diagnostics"
	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
	"github.com/adunn147/AudioExtractionTranscription/internal/logger"
	"github.com/adunn147/AudioExtractionTranscription/internal/pipeline"
	"github.com/adunn147/AudioExtractionTranscription/internal/render"
	"github.com/adunn147/AudioExtractionTranscription/internal/summary"
	"github.com/adunn147/AudioExtractionTranscription/internal/transcoder"
	"github.com/adunn147/AudioExtractionTranscription/internal/transcriber"
	"github.com/adunn147/AudioExtractionTranscription/internal/watcher"
	"github.com/adunn147/AudioExtractionTranscription/pkg/executor"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		videoPath  = flag.String("video", "", "video file to process")
		outputDir  = flag.String("out", "", "output directory (defaults to the video's directory)")
		extract    = flag.Bool("extract", true, "extract audio to a standalone file")
		format     = flag.String("format", "mp3", "extracted audio format: mp3 or wav")
		transcribe = flag.Bool("transcribe", false, "transcribe audio to a docx transcript")
		model      = flag.String("model", "", "whisper model: tiny, base, small, medium, large")
		watchMode  = flag.Bool("watch", false, "watch paths.input for new videos instead of processing one file")
		listModels = flag.Bool("list-models", false, "print available whisper models and exit")
	)
	flag.Parse()

	if *listModels {
		for _, m := range domain.Models() {
			fmt.Printf("%-8s %s\n", m, m.Description())
		}
		return
	}

	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *model == "" {
		*model = cfg.Whisper.DefaultModel
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Extraction & Transcription")
	log.Info(ctx, "========================================")

	exe := executor.New()
	report := diagnostics.NewChecker(exe).Run(ctx, cfg)
	for _, check := range report.Checks {
		if check.OK {
			log.Debug(ctx, "Check %s: %s", check.Name, check.Message)
			continue
		}
		log.Warn(ctx, "Check %s: %s", check.Name, check.Message)
		if check.Hint != "" {
			log.Warn(ctx, "  Hint: %s", check.Hint)
		}
	}

	p := pipeline.New(buildTranscoder(cfg, exe, log), buildTranscriber(cfg, exe, log), render.New(), buildSummarizer(ctx, cfg, log), log)

	if *watchMode {
		runWatchMode(ctx, cfg, p, log, *extract, *format, *transcribe, *model)
		return
	}

	if *videoPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: transcriber -video <file> [-out <dir>] [-extract] [-format mp3|wav] [-transcribe] [-model <name>]")
		os.Exit(2)
	}
	if *outputDir == "" {
		*outputDir = filepath.Dir(*videoPath)
	}

	req, err := buildRequest(*videoPath, *outputDir, *extract, *format, *transcribe, *model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if err := runOnce(ctx, p, log, req); err != nil {
		os.Exit(1)
	}
}

// buildTranscoder returns nil when ffmpeg cannot be resolved, leaving the
// pipeline to report the missing capability per request.
func buildTranscoder(cfg *config.Config, exe executor.Executor, log logger.Logger) transcoder.Transcoder {
	if _, err := exec.LookPath(cfg.Tools.FFmpegPath); err != nil {
		return nil
	}
	return transcoder.New(cfg.Tools.FFmpegPath, exe, log)
}

func buildTranscriber(cfg *config.Config, exe executor.Executor, log logger.Logger) transcriber.Transcriber {
	if _, err := exec.LookPath(cfg.Tools.PythonPath); err != nil {
		return nil
	}
	return transcriber.New(cfg.Tools.PythonPath, exe, log)
}

func buildSummarizer(ctx context.Context, cfg *config.Config, log logger.Logger) summary.Summarizer {
	if len(cfg.Gemini.APIKeys) == 0 {
		return nil
	}
	log.Info(ctx, "Transcript summaries enabled (%d Gemini keys)", len(cfg.Gemini.APIKeys))
	return summary.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
}

func buildRequest(videoPath, outputDir string, extract bool, format string, transcribe bool, model string) (domain.ProcessingRequest, error) {
	req := domain.ProcessingRequest{
		VideoPath:    videoPath,
		OutputDir:    outputDir,
		ExtractAudio: extract,
		Transcribe:   transcribe,
	}

	if extract {
		f, err := domain.ParseAudioFormat(format)
		if err != nil {
			return domain.ProcessingRequest{}, err
		}
		req.AudioFormat = f
	}
	if transcribe {
		m, err := domain.ParseModel(model)
		if err != nil {
			return domain.ProcessingRequest{}, err
		}
		req.Model = m
	}

	return req, nil
}

// runOnce executes a single request while streaming status updates to the log.
func runOnce(ctx context.Context, p pipeline.Pipeline, log logger.Logger, req domain.ProcessingRequest) error {
	events := p.Events().Subscribe(32)
	defer p.Events().Unsubscribe(events)

	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx, req)
	}()

	for {
		select {
		case ev := <-events:
			log.Info(ctx, "Status: %s - %s", ev.Status, ev.Message)
		case err := <-done:
			drainEvents(ctx, log, events)
			if err != nil {
				log.Error(ctx, "Processing failed: %v", err)
			}
			return err
		}
	}
}

func drainEvents(ctx context.Context, log logger.Logger, events <-chan pipeline.Event) {
	for {
		select {
		case ev := <-events:
			log.Info(ctx, "Status: %s - %s", ev.Status, ev.Message)
		default:
			return
		}
	}
}

// runWatchMode monitors cfg.Paths.Input and processes each new video with
// the flag-selected operations until interrupted.
func runWatchMode(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger, extract bool, format string, transcribe bool, model string) {
	if cfg.Paths.Input == "" || cfg.Paths.Output == "" {
		fmt.Fprintln(os.Stderr, "Watch mode requires paths.input and paths.output in the config file")
		os.Exit(2)
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	handler := func(ctx context.Context, videoPath string) error {
		req, err := buildRequest(videoPath, cfg.Paths.Output, extract, format, transcribe, model)
		if err != nil {
			return err
		}
		return runOnce(ctx, p, log, req)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Stopped")
}
