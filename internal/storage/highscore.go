package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile persists a single high score as a base-10 integer in a
// plain text file. The file is read in full on every Load and overwritten in
// full on every Save, so edits made by other processes are picked up on the
// next read.
type HighScoreFile struct {
	path string
}

// ErrMalformedHighScore is returned when the file does not hold an integer.
var ErrMalformedHighScore = errors.New("storage: malformed high score file")

// NewHighScoreFile returns a store backed by the file at path.
// A leading ~ is expanded to the home directory.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Init creates the file with a score of 0 if it does not exist yet.
func (f *HighScoreFile) Init() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot stat high score file: %w", err)
	}
	return f.Save(0)
}

// Load reads the high score. A missing or malformed file returns 0 together
// with the error so callers can decide whether to report it.
func (f *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrMalformedHighScore, f.path, err)
	}
	return score, nil
}

// Save overwrites the file with the given score.
func (f *HighScoreFile) Save(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
