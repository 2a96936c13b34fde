// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates a file (and its parents) under root.
func touch(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return path
}

func TestPDFs(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  []string
	}{
		{
			name: "empty tree",
			want: nil,
		},
		{
			name:  "no pdfs",
			files: []string{"notes.txt", "sub/readme.md"},
			want:  nil,
		},
		{
			name:  "nested pdfs sorted by path",
			files: []string{"z.pdf", "b/doc.pdf", "a/doc.pdf", "a/deep/x/y.pdf"},
			want:  []string{"a/deep/x/y.pdf", "a/doc.pdf", "b/doc.pdf", "z.pdf"},
		},
		{
			name:  "extension match is case-sensitive and exact",
			files: []string{"upper.PDF", "doc.pdf.bak", "plain.pdf", "pdf"},
			want:  []string{"plain.pdf"},
		},
		{
			name:  "directories named like pdfs are excluded",
			files: []string{"real.pdf"},
			dirs:  []string{"folder.pdf"},
			want:  []string{"real.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				touch(t, root, f)
			}
			for _, d := range tt.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
			}

			var warn bytes.Buffer
			got, err := PDFs(root, &warn)
			require.NoError(t, err)

			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.Join(root, w))
			}
			assert.Equal(t, want, got)
			assert.Empty(t, warn.String())
		})
	}
}

func TestPDFsSymlinks(t *testing.T) {
	root := t.TempDir()
	target := touch(t, filepath.Join(root, "store"), "real.pdf")

	require.NoError(t, os.Symlink(target, filepath.Join(root, "link.pdf")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.pdf"), filepath.Join(root, "dangling.pdf")))
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "dirlink.pdf")))

	got, err := PDFs(root, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "link.pdf"),
		target,
	}, got)
}

func TestPDFsMissingRoot(t *testing.T) {
	_, err := PDFs(filepath.Join(t.TempDir(), "nope"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning")
}

func TestPDFsUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	touch(t, root, "ok.pdf")
	locked := filepath.Join(root, "locked")
	touch(t, locked, "hidden.pdf")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	var warn bytes.Buffer
	got, err := PDFs(root, &warn)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "ok.pdf")}, got)
	assert.Contains(t, warn.String(), "skipping "+locked)
}

func TestPDFsStableAcrossRuns(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"c.pdf", "a.pdf", "b/b.pdf"} {
		touch(t, root, f)
	}
	first, err := PDFs(root, &bytes.Buffer{})
	require.NoError(t, err)
	second, err := PDFs(root, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
