package transforms

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables exposed to exec commands.
const (
	EnvTask = "PIPE_BUILDER_TASK"
	EnvFile = "PIPE_BUILDER_FILE"
)

// Shell interprets exec commands.
const Shell = "sh"

// newExec pipes every file through a shell command: contents on stdin,
// replacement contents from stdout. Stderr lines are logged as warnings.
func newExec(ctx context.Context, c *Catalog, arg string) (domain.Transform, error) {
	if err := requireArg("exec", arg); err != nil {
		return nil, err
	}
	argv := []string{Shell, "-c", arg}

	return func(s *domain.Stream, taskID string) (*domain.Stream, error) {
		return s.Map(func(f *domain.File) (*domain.File, error) {
			return run(ctx, c.logger, argv, taskID, f)
		}), nil
	}, nil
}

func run(ctx context.Context, logger ports.Logger, argv []string, taskID string, f *domain.File) (*domain.File, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the pipefile
	cmd.Dir = f.Cwd
	cmd.Env = append(os.Environ(), EnvTask+"="+taskID, EnvFile+"="+f.Path)
	cmd.Stdin = bytes.NewReader(f.Contents)

	var stdout bytes.Buffer
	stderr := &lineWriter{logger: logger, prefix: taskID + ": "}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stderr.Flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failure := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "command", argv[len(argv)-1])
		failure = zerr.With(failure, "exit_code", exitCode)
		return nil, zerr.With(failure, "file", f.Path)
	}

	out := f.Clone()
	out.Contents = bytes.Clone(stdout.Bytes())
	if out.Contents == nil {
		out.Contents = []byte{}
	}
	out.Unread = false
	return out, nil
}

// lineWriter forwards complete lines to the logger, buffering partial writes.
type lineWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	prefix string
	buf    bytes.Buffer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSuffix(string(w.buf.Next(i+1)), "\n")
		w.emit(line)
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return
	}
	w.logger.Warn(w.prefix + line)
}
