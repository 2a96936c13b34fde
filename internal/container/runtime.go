// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container runs external extraction tools, either as container
// images under docker or podman or as binaries installed on the host.
package container

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

// Runtime provides container operations: checking availability, verifying
// images, and running containers.
type Runtime interface {
	// Name returns the runtime name ("docker" or "podman").
	Name() string

	// Available reports whether the runtime binary exists on PATH and
	// responds to an info command.
	Available() bool

	// ImageExists checks whether the named image exists locally.
	ImageExists(image string) error

	// Run executes a container with the given image, piping stdin and stdout.
	// The container has no network access.
	Run(image string, stdin io.Reader, stdout io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runPiped runs name with args and folds whatever the command printed on
// stderr into the returned error.
func runPiped(e executor, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	var stderr bytes.Buffer
	if err := e.RunPiped(name, args, stdin, stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, firstLine(msg))
		}
		return err
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// runtime implements Runtime for a specific container binary. Docker and
// Podman differ only in binary name and the image existence subcommand.
type runtime struct {
	bin           string
	imageCheckCmd []string // e.g. ["image", "inspect"] for docker
	exec          executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

func (r *runtime) ImageExists(image string) error {
	args := make([]string, 0, len(r.imageCheckCmd)+1)
	args = append(args, r.imageCheckCmd...)
	args = append(args, image)

	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Run(image string, stdin io.Reader, stdout io.Writer) error {
	args := []string{"run", "--rm", "-i", "--network", "none", image}
	if err := runPiped(r.exec, r.bin, args, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", r.bin, image, err)
	}
	return nil
}

func newDockerRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binDocker,
		imageCheckCmd: []string{"image", "inspect"},
		exec:          exec,
	}
}

func newPodmanRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binPodman,
		imageCheckCmd: []string{"image", "exists"},
		exec:          exec,
	}
}

var defaultExec executor = &osExecutor{}

// DetectRuntime tries docker first, falls back to podman. Returns an error
// if neither runtime is available.
func DetectRuntime() (Runtime, error) {
	return detectRuntime(defaultExec)
}

func detectRuntime(exec executor) (Runtime, error) {
	docker := newDockerRuntime(exec)
	if docker.Available() {
		return docker, nil
	}

	podman := newPodmanRuntime(exec)
	if podman.Available() {
		return podman, nil
	}

	return nil, fmt.Errorf(
		"no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman,
	)
}
