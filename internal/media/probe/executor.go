package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command describes a single backend invocation.
type Command struct {
	Binary string
	Args   []string
	// Dir is the child's working directory. Empty inherits the caller's.
	Dir string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Binary}, c.Args...), " ")
}

// Executor abstracts command execution for testability. Run returns whatever
// the command wrote to stdout, even when it also returns an error.
type Executor interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// waitDelay bounds how long Run waits for output pipes after the context
// kills the process.
const waitDelay = 2 * time.Second

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, c Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, c.Args...) //nolint:gosec
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return stdout.Bytes(), fmt.Errorf("%w: %s", err, detail)
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}
