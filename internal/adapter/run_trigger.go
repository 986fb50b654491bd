package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"

	"github.com/joho/godotenv"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// ErrNoConfiguration is returned when a re-run is requested without a runnable configuration.
var ErrNoConfiguration = errors.New("no run configuration selected")

// RunTrigger asks the host to execute a run configuration again.
type RunTrigger interface {
	// Rerun starts the configuration and returns once it is launched. It does not wait
	// for the tests to finish.
	Rerun(ctx context.Context, cfg m.RunConfiguration) error
}

// LocalRunTrigger launches run configurations as child processes.
type LocalRunTrigger struct {
	workDir m.Path
	output  io.Writer

	wg sync.WaitGroup
}

// NewLocalRunTrigger constructs a LocalRunTrigger. Relative configuration dirs and env
// files are resolved against workDir. Child output is copied to output when non-nil.
func NewLocalRunTrigger(workDir m.Path, output io.Writer) *LocalRunTrigger {
	return &LocalRunTrigger{
		workDir: workDir,
		output:  output,
	}
}

// Rerun implements RunTrigger.
func (t *LocalRunTrigger) Rerun(ctx context.Context, cfg m.RunConfiguration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !cfg.Valid() {
		return fmt.Errorf("%w: %q", ErrNoConfiguration, cfg.Name)
	}

	env, err := t.environ(cfg)
	if err != nil {
		return err
	}

	// #nosec G204 - the command comes from the user's own run configuration
	cmd := exec.Command(cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = t.resolve(cfg.Dir)
	cmd.Env = env

	if t.output != nil {
		cmd.Stdout = t.output
		cmd.Stderr = t.output
	}

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to start run configuration", "name", cfg.Name, "error", err)
		return fmt.Errorf("start %s: %w", cfg.Name, err)
	}

	slog.Info("Re-run started", "name", cfg.Name, "pid", cmd.Process.Pid)

	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		if err := cmd.Wait(); err != nil {
			slog.Warn("Re-run finished with error", "name", cfg.Name, "error", err)
			return
		}

		slog.Info("Re-run finished", "name", cfg.Name)
	}()

	return nil
}

// Wait blocks until every launched process has exited or ctx is done.
func (t *LocalRunTrigger) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// environ builds the child environment: the current process, then the env file, then
// the configuration's explicit variables.
func (t *LocalRunTrigger) environ(cfg m.RunConfiguration) ([]string, error) {
	vars := make(map[string]string)

	if cfg.EnvFile != "" {
		fileVars, err := godotenv.Read(t.resolve(cfg.EnvFile))
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", cfg.EnvFile, err)
		}

		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for k, v := range cfg.Env {
		vars[k] = v
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	env := os.Environ()
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}

	return env, nil
}

func (t *LocalRunTrigger) resolve(path string) string {
	if path == "" {
		return string(t.workDir)
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(string(t.workDir), path)
}
