package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreFileRoundTrip(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "high_score.txt"))
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}

	for _, score := range []int{0, 1, 10, 990, 2147483647} {
		if err := f.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
		got, err := f.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if got != score {
			t.Errorf("Load() = %d, expected %d", got, score)
		}
	}
}

func TestHighScoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	f, _ := NewHighScoreFile(path)

	f.Save(1234)
	f.Save(50) // overwrite, not append

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "50" {
		t.Errorf("file content = %q, expected %q", data, "50")
	}
}

func TestHighScoreFileMissing(t *testing.T) {
	f, _ := NewHighScoreFile(filepath.Join(t.TempDir(), "nope.txt"))

	got, err := f.Load()
	if err == nil {
		t.Error("Load() of missing file should report an error")
	}
	if got != 0 {
		t.Errorf("Load() of missing file = %d, expected 0", got)
	}
}

func TestHighScoreFileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"text", "lots"},
		{"float", "12.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			f, _ := NewHighScoreFile(path)

			got, err := f.Load()
			if !errors.Is(err, ErrMalformedHighScore) {
				t.Errorf("Load() error = %v, expected ErrMalformedHighScore", err)
			}
			if got != 0 {
				t.Errorf("Load() = %d, expected 0", got)
			}
		})
	}
}

func TestHighScoreFileTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	os.WriteFile(path, []byte("70\n"), 0o600)
	f, _ := NewHighScoreFile(path)

	got, err := f.Load()
	if err != nil || got != 70 {
		t.Errorf("Load() = (%d, %v), expected (70, nil)", got, err)
	}
}

func TestHighScoreFileInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "high_score.txt")
	f, _ := NewHighScoreFile(path)

	if err := f.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if got, err := f.Load(); err != nil || got != 0 {
		t.Errorf("after Init, Load() = (%d, %v), expected (0, nil)", got, err)
	}

	// Init must not clobber an existing score
	f.Save(80)
	if err := f.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if got, _ := f.Load(); got != 80 {
		t.Errorf("Init() overwrote existing score, got %d", got)
	}
}

func TestHighScoreFileExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := NewHighScoreFile("~/.snake/high_score.txt")
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}
	expected := filepath.Join(home, ".snake", "high_score.txt")
	if f.Path() != expected {
		t.Errorf("Path() = %q, expected %q", f.Path(), expected)
	}
}
