package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake/internal/domain"
)

var _ domain.HighScoreRecorder = (*HighScoreFile)(nil)

func TestHighScoreFile_Load(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    int
	}{
		{"missing", nil, 0},
		{"plain", strPtr("42"), 42},
		{"whitespace", strPtr("  17\n"), 17},
		{"empty", strPtr(""), 0},
		{"garbage", strPtr("lots"), 0},
		{"negative", strPtr("-3"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}
			assert.Equal(t, tt.want, NewHighScoreFile(path).Load())
		})
	}
}

func TestHighScoreFile_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	f := NewHighScoreFile(path)

	require.NoError(t, f.Save(12))
	require.NoError(t, f.Save(7))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
	assert.Equal(t, 7, f.Load())

	assert.Error(t, f.Save(-1))
}

func TestHighScoreFile_RecordHighScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	f := NewHighScoreFile(path)

	f.RecordHighScore(5)
	assert.Equal(t, 5, f.Load())

	// Unwritable location: logged, no panic.
	bad := NewHighScoreFile(filepath.Join(t.TempDir(), "missing", "dir", "highscore.txt"))
	bad.RecordHighScore(3)
	assert.Equal(t, 0, bad.Load())
}

func TestNewHighScoreFile_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultHighScoreFile, NewHighScoreFile("").Path)
}

func strPtr(s string) *string {
	return &s
}
