package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/repositories"
)

func TestVersionCmd(t *testing.T) {
	root := newRootCmd("1.0.0", "2025-10-01")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "reencode 1.0.0 (2025-10-01)\n", out.String())
}

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "EncodeFile.json")
	t.Setenv("ENCODE_FILE", path)

	archive := &models.EncodingArchive{}
	archive.Add("alice", []float64{0.1, 0.2, 0.3})
	archive.Add("bob", []float64{0.4, 0.5, 0.6})
	require.NoError(t, repositories.NewArchiveFileRepository(path).Save(archive))

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "counts only",
			args:     []string{"inspect", "-c", filepath.Join(dir, "missing.env")},
			expected: "archive " + path + ": 2 encodings, 3 dimensions\n",
		},
		{
			name:     "with ids",
			args:     []string{"inspect", "-c", filepath.Join(dir, "missing.env"), "--ids"},
			expected: "archive " + path + ": 2 encodings, 3 dimensions\nalice\nbob\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd("dev", "unknown")
			out := new(bytes.Buffer)
			root.SetOut(out)
			root.SetArgs(tt.args)

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestInspectCmd_MissingArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.json")
	t.Setenv("ENCODE_FILE", path)

	root := newRootCmd("dev", "unknown")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"inspect", "-c", filepath.Join(dir, "missing.env")})

	require.NoError(t, root.Execute())
	assert.Equal(t, "archive "+path+": 0 encodings, 0 dimensions\n", out.String())
}

func TestInspectCmd_BadConfig(t *testing.T) {
	t.Setenv("IMAGE_STORE", "ftp")

	root := newRootCmd("dev", "unknown")
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"inspect", "-c", filepath.Join(t.TempDir(), "missing.env")})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
