// Package storage persists the high score as a plain-text integer.
package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"snake/internal/log"
)

const DefaultHighScoreFile = "highscore.txt"

type HighScoreFile struct {
	Path string
}

func NewHighScoreFile(path string) *HighScoreFile {
	if path == "" {
		path = DefaultHighScoreFile
	}
	return &HighScoreFile{Path: path}
}

// Load returns the stored high score. A missing, unreadable or malformed file
// counts as 0; the reason is logged, not returned.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No high score file at %s, starting from 0", f.Path)
		} else {
			log.Warn("Failed to read high score file %s: %v", f.Path, err)
		}
		return 0
	}

	score, err := parseHighScore(data)
	if err != nil {
		log.Warn("Ignoring high score file %s: %v", f.Path, err)
		return 0
	}
	return score
}

func (f *HighScoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("negative high score %d", score)
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}

// RecordHighScore implements domain.HighScoreRecorder.
func (f *HighScoreFile) RecordHighScore(score int) {
	if err := f.Save(score); err != nil {
		log.Error("Failed to save high score %d: %v", score, err)
		return
	}
	log.Debug("High score %d saved to %s", score, f.Path)
}

func parseHighScore(data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, errors.New("empty file")
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("negative value %d", score)
	}
	return score, nil
}
