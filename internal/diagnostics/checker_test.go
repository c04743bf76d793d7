package diagnostics

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/adunn147/AudioExtractionTranscription/internal/config"
)

type fakeExecutor struct {
	err error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", f.err
}

func (f *fakeExecutor) Stream(ctx context.Context, onLine func(string), name string, args ...string) error {
	return f.err
}

func TestRunAllChecksPass(t *testing.T) {
	checker := NewCheckerForTests(
		&fakeExecutor{},
		func(name string) (string, error) { return "/usr/bin/" + name, nil },
		func(string, os.FileMode) error { return nil },
	)

	cfg := config.Default()
	cfg.Paths.Output = "out"

	report := checker.Run(context.Background(), cfg)
	if report.HasFailures {
		t.Fatalf("unexpected failures: %+v", report.Checks)
	}
	if len(report.Checks) != 4 {
		t.Errorf("checks = %d, want 4", len(report.Checks))
	}
}

func TestRunMissingFFmpeg(t *testing.T) {
	checker := NewCheckerForTests(
		&fakeExecutor{},
		func(name string) (string, error) {
			if name == "ffmpeg" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + name, nil
		},
		func(string, os.FileMode) error { return nil },
	)

	report := checker.Run(context.Background(), config.Default())
	if !report.HasFailures {
		t.Fatal("expected failure for missing ffmpeg")
	}

	var found bool
	for _, check := range report.Checks {
		if check.ID == "tool_ffmpeg" && !check.OK {
			found = true
			if check.Hint == "" {
				t.Error("failed check should carry a hint")
			}
		}
	}
	if !found {
		t.Errorf("no failing ffmpeg check in %+v", report.Checks)
	}
}

func TestRunWhisperNotImportable(t *testing.T) {
	checker := NewCheckerForTests(
		&fakeExecutor{err: errors.New("ModuleNotFoundError: No module named 'whisper'")},
		func(name string) (string, error) { return "/usr/bin/" + name, nil },
		func(string, os.FileMode) error { return nil },
	)

	report := checker.Run(context.Background(), config.Default())
	if !report.HasFailures {
		t.Fatal("expected failure for missing whisper")
	}
	for _, check := range report.Checks {
		if check.ID == "whisper" && check.OK {
			t.Error("whisper check should fail when import fails")
		}
	}
}

func TestRunSkipsOutputDirWhenUnset(t *testing.T) {
	checker := NewCheckerForTests(
		&fakeExecutor{},
		func(name string) (string, error) { return "/usr/bin/" + name, nil },
		func(string, os.FileMode) error { return errors.New("should not be called") },
	)

	report := checker.Run(context.Background(), config.Default())
	for _, check := range report.Checks {
		if check.ID == "output_dir" {
			t.Error("output dir check should be skipped when unconfigured")
		}
	}
}
