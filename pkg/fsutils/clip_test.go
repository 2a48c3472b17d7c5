package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadClipped(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")
	body := []byte("line one\nline two\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{name: "whole", limit: 0, want: string(body)},
		{name: "head", limit: 4, want: "line"},
		{name: "head_past_end", limit: 1000, want: string(body)},
		{name: "tail", limit: -9, want: "line two\n"},
		{name: "tail_past_start", limit: -1000, want: string(body)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadClipped(path, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	for _, limit := range []int{0, 3, -3} {
		_, err := ReadClipped(filepath.Join(dir, "missing.txt"), limit)
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}
