package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/book-expert/text-normalizer/internal/fsutil"
)

func TestEnsureDir_CreatesNestedDirectories(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "a", "b", "c")

	err := fsutil.EnsureDir(target)
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	info, statErr := os.Stat(target)
	if statErr != nil {
		t.Fatalf("Expected directory to exist: %v", statErr)
	}

	if !info.IsDir() {
		t.Fatalf("Expected %s to be a directory", target)
	}
}

func TestEnsureDir_ExistingDirectory(t *testing.T) {
	t.Parallel()

	target := t.TempDir()

	err := fsutil.EnsureDir(target)
	if err != nil {
		t.Fatalf("EnsureDir on existing directory failed: %v", err)
	}
}

func TestIsValidTextFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     bool
	}{
		{"chunks.json", true},
		{"notes.txt", true},
		{"README.md", true},
		{"page.html", true},
		{"audio.wav", false},
		{"binary", false},
	}

	for _, testCase := range cases {
		got := fsutil.IsValidTextFile(testCase.filename)
		if got != testCase.want {
			t.Errorf(
				"IsValidTextFile(%q) = %v, want %v",
				testCase.filename,
				got,
				testCase.want,
			)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	got := fsutil.SanitizeFilename(`ch:1/intro?*.txt`)

	want := "ch_1_intro__.txt"
	if got != want {
		t.Errorf("SanitizeFilename = %q, want %q", got, want)
	}
}

func TestGetFileExtension(t *testing.T) {
	t.Parallel()

	if got := fsutil.GetFileExtension("chunks.json"); got != "json" {
		t.Errorf("GetFileExtension = %q, want %q", got, "json")
	}

	if got := fsutil.GetFileExtension("noext"); got != "" {
		t.Errorf("GetFileExtension = %q, want empty", got)
	}
}
