// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package noderun implements Node.js runtime detection and script execution
// for the decode backend.
package noderun

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const binNode = "node"

// nodeModulesDir must exist beside the decode script for it to run.
const nodeModulesDir = "node_modules"

// Runtime provides Node.js operations: checking availability, verifying a
// script's dependencies, and running a script.
type Runtime interface {
	// Name returns the runtime binary name.
	Name() string

	// Available reports whether the node binary exists on PATH and
	// responds to a version query.
	Available() bool

	// ScriptReady checks that the script exists and has its installed
	// dependencies next to it. Returns nil when the script is runnable.
	ScriptReady(script string) error

	// Run executes the script with the given arguments and returns its
	// standard output. The context bounds the call.
	Run(ctx context.Context, script string, args []string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(ctx context.Context, name string, args ...string) error
	RunOutput(ctx context.Context, name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (o *osExecutor) RunOutput(ctx context.Context, name string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// runtime implements Runtime for the node binary.
type runtime struct {
	exec executor
}

func (r *runtime) Name() string { return binNode }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(binNode); err != nil {
		return false
	}
	return r.exec.RunSilent(context.Background(), binNode, "--version") == nil
}

func (r *runtime) ScriptReady(script string) error {
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("decode script %s: %w", script, err)
	}
	modules := filepath.Join(filepath.Dir(script), nodeModulesDir)
	if _, err := os.Stat(modules); err != nil {
		return fmt.Errorf("node dependencies %s: %w", modules, err)
	}
	return nil
}

func (r *runtime) Run(ctx context.Context, script string, args []string) (string, error) {
	cmdArgs := make([]string, 0, len(args)+1)
	cmdArgs = append(cmdArgs, script)
	cmdArgs = append(cmdArgs, args...)

	out, err := r.exec.RunOutput(ctx, binNode, cmdArgs...)
	if err != nil {
		return "", fmt.Errorf("running %s %s: %w", binNode, script, err)
	}
	return out, nil
}

var defaultExec = &osExecutor{}

// Detect returns the Node.js runtime, or an error when the binary is
// missing or not operational.
func Detect() (Runtime, error) {
	return detect(defaultExec)
}

func detect(exec executor) (Runtime, error) {
	rt := &runtime{exec: exec}
	if !rt.Available() {
		return nil, fmt.Errorf("node runtime not available: %s not found or not operational", binNode)
	}
	return rt, nil
}
