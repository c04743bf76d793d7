package watcher

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/in/lecture.mp4", true},
		{"/in/clip.MKV", true},
		{"/in/old.wmv", true},
		{"/in/clip.m4v", true},
		{"/in/audio.mp3", false},
		{"/in/notes.txt", false},
		{"/in/noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isVideoFile(tt.path); got != tt.want {
				t.Errorf("isVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
