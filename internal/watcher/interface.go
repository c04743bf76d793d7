package watcher

import "context"

// Watcher monitors a directory for newly dropped video files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected video file.
type EventHandler func(ctx context.Context, videoPath string) error
