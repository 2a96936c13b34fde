// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"fmt"
	"io"
)

// Host runs a binary installed on the local machine, such as poppler's
// pdftotext.
type Host struct {
	bin  string
	exec executor
}

// NewHost returns a Host for the named binary. It does not check PATH; call
// Available for that.
func NewHost(bin string) *Host {
	return newHost(bin, defaultExec)
}

func newHost(bin string, exec executor) *Host {
	return &Host{bin: bin, exec: exec}
}

// Name returns the binary name.
func (h *Host) Name() string { return h.bin }

// Available reports whether the binary is on PATH.
func (h *Host) Available() bool {
	_, err := h.exec.LookPath(h.bin)
	return err == nil
}

// Run executes the binary with args, writing its standard output to stdout.
func (h *Host) Run(args []string, stdout io.Writer) error {
	if err := runPiped(h.exec, h.bin, args, nil, stdout); err != nil {
		return fmt.Errorf("running %s: %w", h.bin, err)
	}
	return nil
}
