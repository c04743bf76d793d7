package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "watch input without output",
			config: Config{
				Paths: PathsConfig{Input: "data/input"},
			},
			wantErr: true,
		},
		{
			name: "watch input with output",
			config: Config{
				Paths: PathsConfig{Input: "data/input", Output: "data/output"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Tools.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %v, want ffmpeg", cfg.Tools.FFmpegPath)
	}
	if cfg.Tools.PythonPath != "python3" {
		t.Errorf("PythonPath = %v, want python3", cfg.Tools.PythonPath)
	}
	if cfg.Whisper.DefaultModel != "base" {
		t.Errorf("DefaultModel = %v, want base", cfg.Whisper.DefaultModel)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
tools:
  ffmpeg_path: "/opt/ffmpeg/bin/ffmpeg"
  python_path: "python3.12"

whisper:
  default_model: "small"

logging:
  level: "debug"

gemini:
  api_keys:
    - "key-one"
    - "key-two"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Tools.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %v", cfg.Tools.FFmpegPath)
	}
	if cfg.Whisper.DefaultModel != "small" {
		t.Errorf("DefaultModel = %v", cfg.Whisper.DefaultModel)
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys count = %d, want 2", len(cfg.Gemini.APIKeys))
	}
	// Untouched fields still get defaults.
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v", cfg.Gemini.Model)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
