package creds

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// ShellCommand builds the *exec.Cmd that runs script through the user's
// shell, inheriting the real TTY's stdio, per spec.md §4.2 step 1. Exposed
// separately from RunSetupScript so the message loop can instead hand this
// to bubbletea's tea.ExecProcess, which owns suspending and restoring the
// alternate screen around it (spec.md §5's "TUI suspension" paragraph) —
// RunSetupScript itself is for callers (and tests) that already aren't
// running inside a TUI frame.
func ShellCommand(ctx context.Context, script string) *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// ClassifyExit turns the *exec.ExitError (or nil) a shell command finished
// with into the SetupScriptFailed taxonomy member, or nil on success.
func ClassifyExit(err error) error {
	if err == nil {
		return nil
	}
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return s3cerr.SetupScriptFailedErr(exitCode, err)
}

// RunSetupScript runs profile.setup_script through the user's shell and
// waits for it, classifying a non-zero exit into SetupScriptFailed. Used
// directly by callers not running inside a suspended TUI frame (see
// ShellCommand for that case).
func RunSetupScript(ctx context.Context, script string) error {
	return ClassifyExit(ShellCommand(ctx, script).Run())
}
