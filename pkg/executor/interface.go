package executor

import "context"

// Executor defines the interface for executing external commands.
type Executor interface {
	// Execute runs a command to completion and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Stream runs a command and invokes onLine for each stdout line as it
	// is produced. Stderr is captured and folded into the returned error.
	Stream(ctx context.Context, onLine func(line string), name string, args ...string) error
}
