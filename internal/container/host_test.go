// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostAvailable(t *testing.T) {
	present := newHost("pdftotext", &mockExecutor{availableBins: map[string]bool{"pdftotext": true}})
	assert.True(t, present.Available())
	assert.Equal(t, "pdftotext", present.Name())

	missing := newHost("pdftotext", &mockExecutor{availableBins: map[string]bool{}})
	assert.False(t, missing.Available())
}

func TestHostRun(t *testing.T) {
	tests := []struct {
		name       string
		pipeFunc   func(string, []string, io.Reader, io.Writer, io.Writer) error
		wantOut    string
		wantErrMsg string
	}{
		{
			name: "passes args and captures stdout",
			pipeFunc: func(name string, args []string, stdin io.Reader, stdout, _ io.Writer) error {
				if name != "pdftotext" {
					return errors.New("unexpected binary " + name)
				}
				if stdin != nil {
					return errors.New("host commands get no stdin")
				}
				_, _ = stdout.Write([]byte(strings.Join(args, ",")))
				return nil
			},
			wantOut: "-enc,UTF-8,in.pdf,-",
		},
		{
			name: "failure carries stderr",
			pipeFunc: func(_ string, _ []string, _ io.Reader, _, stderr io.Writer) error {
				_, _ = stderr.Write([]byte("Syntax Error: Couldn't find trailer dictionary\n"))
				return errors.New("exit status 1")
			},
			wantErrMsg: "running pdftotext: exit status 1: Syntax Error: Couldn't find trailer dictionary",
		},
		{
			name: "failure without stderr",
			pipeFunc: func(string, []string, io.Reader, io.Writer, io.Writer) error {
				return errors.New("exit status 3")
			},
			wantErrMsg: "running pdftotext: exit status 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost("pdftotext", &mockExecutor{runPipedFunc: tt.pipeFunc})
			var out bytes.Buffer
			err := h.Run([]string{"-enc", "UTF-8", "in.pdf", "-"}, &out)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}
