// Package shell provides a shell-based step runner that drives the
// underlying install tools (system package manager and pip).
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.StepRunner using os/exec and pty.
type Runner struct {
	logger ports.Logger

	// commands maps a step to the install tool invocations that realize
	// it. Overridable in tests.
	commands func(step *domain.InstallStep) [][]string
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:   logger,
		commands: defaultCommands,
	}
}

// Run executes the install tool invocations for one step, strictly in
// order. The first failing invocation aborts the step; already applied
// invocations are not rolled back, matching layer semantics.
func (r *Runner) Run(
	ctx context.Context,
	variantID, root string,
	step *domain.InstallStep,
	env []string,
) error {
	if len(step.Requirements) == 0 {
		return zerr.With(domain.ErrEmptyStep, "variant", variantID)
	}

	cmdEnv := resolveEnvironment(os.Environ(), env)

	for _, argv := range r.commands(step) {
		r.logger.Info(variantID + ": " + strings.Join(argv, " "))
		if err := r.runCommand(ctx, root, argv, cmdEnv); err != nil {
			return err
		}
	}

	return nil
}

// runCommand launches one install tool invocation in a PTY so the tool
// sees a terminal, and streams its merged output through the logger.
func (r *Runner) runCommand(ctx context.Context, root string, argv, env []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is built from the resolved plan
	cmd.Dir = root
	cmd.Env = env

	stdoutLog := &logWriter{logger: r.logger}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = stdoutLog.Close() }()

		// PTY merges stdout and stderr into one stream.
		_, _ = io.Copy(stdoutLog, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	if err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// defaultCommands maps a step onto install tool invocations. System
// batches go through the system package manager, ecosystem batches
// through a single pip invocation, and project requirements install one
// by one since editables and checkouts cannot share an invocation.
func defaultCommands(step *domain.InstallStep) [][]string {
	switch step.Tier {
	case domain.TierSystem:
		argv := []string{"apt-get", "install", "--no-install-recommends", "-y"}
		for _, req := range step.Requirements {
			entry := req.Name.String()
			if req.Pinned() {
				entry += "=" + req.PinnedVersion()
			}
			argv = append(argv, entry)
		}
		return [][]string{argv}

	case domain.TierEcosystem:
		argv := []string{"python", "-m", "pip", "install", "--no-cache-dir"}
		for _, req := range step.Requirements {
			argv = append(argv, req.DisplayName())
		}
		return [][]string{argv}

	default:
		cmds := make([][]string, 0, len(step.Requirements))
		for _, req := range step.Requirements {
			if req.Source == domain.SourceLocal {
				cmds = append(cmds, []string{"python", "-m", "pip", "install", "--no-cache-dir", "-e", req.Ref})
				continue
			}
			cmds = append(cmds, []string{"python", "-m", "pip", "install", "--no-cache-dir", req.Ref})
		}
		return cmds
	}
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}

// allowListedEnvVars are the system environment variables inherited by
// install tool invocations. Everything else comes from the variant's
// own exports, keeping builds reproducible.
var allowListedEnvVars = map[string]struct{}{
	"HOME": {},
	"TERM": {},
	"USER": {},
	"PATH": {},
}

// resolveEnvironment merges the allow-listed system environment with
// the variant's exports, exports winning on collision.
func resolveEnvironment(sysEnv, variantEnv []string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			if _, allowed := allowListedEnvVars[k]; allowed {
				envMap[k] = v
			}
		}
	}

	for _, entry := range variantEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
