package diagnostics

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/adunn147/AudioExtractionTranscription/internal/config"
	"github.com/adunn147/AudioExtractionTranscription/pkg/executor"
)

// Check is one startup dependency check result.
type Check struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Report aggregates startup checks.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`
	HasFailures bool      `json:"hasFailures"`
	Checks      []Check   `json:"checks"`
}

// Checker validates external tools before any processing starts.
type Checker struct {
	executor executor.Executor
	lookPath func(string) (string, error)
	mkdirAll func(string, os.FileMode) error
}

// NewChecker builds a checker using real OS dependencies.
func NewChecker(exec executor.Executor) *Checker {
	return &Checker{
		executor: exec,
		lookPath: osexecLookPath,
		mkdirAll: os.MkdirAll,
	}
}

func osexecLookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes all startup checks for the given configuration.
func (c *Checker) Run(ctx context.Context, cfg *config.Config) Report {
	checks := []Check{
		c.checkTool("ffmpeg", cfg.Tools.FFmpegPath, "Install ffmpeg and ensure it is on PATH, or set tools.ffmpeg_path."),
		c.checkTool("python", cfg.Tools.PythonPath, "Install Python 3 or set tools.python_path."),
		c.checkWhisper(ctx, cfg.Tools.PythonPath),
	}
	if cfg.Paths.Output != "" {
		checks = append(checks, c.checkOutputDir(cfg.Paths.Output))
	}

	hasFailures := false
	for _, check := range checks {
		if !check.OK {
			hasFailures = true
			break
		}
	}

	return Report{
		GeneratedAt: time.Now().UTC(),
		HasFailures: hasFailures,
		Checks:      checks,
	}
}

// checkTool verifies a required executable can be resolved.
func (c *Checker) checkTool(id, path, hint string) Check {
	resolved, err := c.lookPath(path)
	if err != nil {
		return Check{
			ID:      "tool_" + id,
			Name:    id,
			OK:      false,
			Message: fmt.Sprintf("Tool not found: %s", path),
			Hint:    hint,
		}
	}

	return Check{
		ID:      "tool_" + id,
		Name:    id,
		OK:      true,
		Message: fmt.Sprintf("Found at %s", resolved),
	}
}

// checkWhisper verifies the whisper library is importable. Transcription is
// still optional, so a failure here only disables that operation.
func (c *Checker) checkWhisper(ctx context.Context, pythonPath string) Check {
	check := Check{
		ID:   "whisper",
		Name: "openai-whisper",
	}

	if _, err := c.executor.Execute(ctx, pythonPath, "-c", "import whisper"); err != nil {
		check.OK = false
		check.Message = "The whisper library is not importable; transcription is unavailable."
		check.Hint = "Install it with: pip install --user openai-whisper"
		return check
	}

	check.OK = true
	check.Message = "whisper library is importable"
	return check
}

// checkOutputDir validates the configured watch-mode output directory.
func (c *Checker) checkOutputDir(dir string) Check {
	check := Check{
		ID:   "output_dir",
		Name: "Output directory",
	}

	if err := c.mkdirAll(dir, 0o755); err != nil {
		check.OK = false
		check.Message = fmt.Sprintf("Cannot create output directory: %s", dir)
		check.Hint = "Choose a writable location or adjust filesystem permissions."
		return check
	}

	check.OK = true
	check.Message = fmt.Sprintf("Usable directory: %s", dir)
	return check
}

// NewCheckerForTests creates a checker with injectable dependencies.
func NewCheckerForTests(
	exec executor.Executor,
	lookPath func(string) (string, error),
	mkdirAll func(string, os.FileMode) error,
) *Checker {
	return &Checker{
		executor: exec,
		lookPath: lookPath,
		mkdirAll: mkdirAll,
	}
}
