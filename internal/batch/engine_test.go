package batch_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/book-expert/logger"

	"github.com/book-expert/text-normalizer/internal/batch"
	"github.com/book-expert/text-normalizer/internal/normalizer"
)

// createTestLogger creates a test logger instance for batch engine testing.
func createTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	lg, err := logger.New(t.TempDir(), "batch-test.log")
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return lg
}

func createTestEngine(t *testing.T) *batch.Engine {
	t.Helper()

	lg := createTestLogger(t)
	t.Cleanup(func() { lg.Close() })

	return batch.NewEngine(normalizer.New(), normalizer.DefaultOptions(), 2, lg)
}

// writeChunksFile marshals the chunks and writes them to a chunks.json in a
// fresh temp directory, returning the file path and the directory.
func writeChunksFile(t *testing.T, chunks []string) (string, string) {
	t.Helper()

	tempDir := t.TempDir()
	chunksPath := filepath.Join(tempDir, "chunks.json")

	chunksData, err := json.Marshal(chunks)
	if err != nil {
		t.Fatalf("Failed to marshal test chunks: %v", err)
	}

	if err := os.WriteFile(chunksPath, chunksData, 0o644); err != nil {
		t.Fatalf("Failed to write chunks file: %v", err)
	}

	return chunksPath, tempDir
}

// TestEngine_ProcessSingleChunk_Success verifies normalization and file output
// for a single chunk.
func TestEngine_ProcessSingleChunk_Success(t *testing.T) {
	engine := createTestEngine(t)

	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "output.txt")

	err := engine.ProcessSingleChunk("The total was $50.", outputPath)
	if err != nil {
		t.Fatalf("ProcessSingleChunk failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	expected := "The total was fifty dollars."
	if string(content) != expected {
		t.Errorf("Expected file content %q, got %q", expected, string(content))
	}
}

// TestEngine_ProcessSingleChunk_EmptyText verifies validation of empty text input.
func TestEngine_ProcessSingleChunk_EmptyText(t *testing.T) {
	engine := createTestEngine(t)

	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "output.txt")

	err := engine.ProcessSingleChunk("", outputPath)
	if err == nil {
		t.Fatal("Expected error for empty text, got nil")
	}
}

// TestEngine_ProcessSingleChunk_EmptyOutputPath verifies validation of empty
// output path.
func TestEngine_ProcessSingleChunk_EmptyOutputPath(t *testing.T) {
	engine := createTestEngine(t)

	err := engine.ProcessSingleChunk("some text", "")
	if err == nil {
		t.Fatal("Expected error for empty output path, got nil")
	}
}

// TestEngine_ProcessChunks_Success verifies successful chunks file processing.
func TestEngine_ProcessChunks_Success(t *testing.T) {
	engine := createTestEngine(t)

	chunksPath, tempDir := writeChunksFile(t, []string{
		"Meet me at 3:05pm.",
		"The price is $1.",
		"Chapter 12 covers the basics.",
	})

	outputDir := filepath.Join(tempDir, "output")

	err := engine.ProcessChunks(chunksPath, outputDir)
	if err != nil {
		t.Fatalf("ProcessChunks failed: %v", err)
	}

	expectedContents := map[string]string{
		"chunk_0001.txt": "Meet me at three oh five pm.",
		"chunk_0002.txt": "The price is one dollar.",
		"chunk_0003.txt": "Chapter twelve covers the basics.",
	}

	for filename, expected := range expectedContents {
		outputPath := filepath.Join(outputDir, filename)

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("Expected output file %s was not created: %v", filename, err)
		}

		if string(content) != expected {
			t.Errorf(
				"File %s: expected content %q, got %q",
				filename,
				expected,
				string(content),
			)
		}
	}
}

// TestEngine_ProcessChunks_InvalidChunksFile verifies handling of invalid
// chunks files.
func TestEngine_ProcessChunks_InvalidChunksFile(t *testing.T) {
	engine := createTestEngine(t)

	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "output")

	err := engine.ProcessChunks("/non/existent/chunks.json", outputDir)
	if err == nil {
		t.Fatal("Expected error for non-existent chunks file, got nil")
	}
}

// TestEngine_ProcessChunks_RejectsNonTextExtension verifies that a chunks
// path without a recognized text extension is refused before reading.
func TestEngine_ProcessChunks_RejectsNonTextExtension(t *testing.T) {
	engine := createTestEngine(t)

	tempDir := t.TempDir()
	chunksPath := filepath.Join(tempDir, "chunks.bin")

	if err := os.WriteFile(chunksPath, []byte(`["one"]`), 0o644); err != nil {
		t.Fatalf("Failed to write chunks file: %v", err)
	}

	err := engine.ProcessChunks(chunksPath, filepath.Join(tempDir, "output"))
	if !errors.Is(err, batch.ErrChunksFileType) {
		t.Fatalf("Expected ErrChunksFileType, got %v", err)
	}
}

// TestEngine_ProcessChunks_EmptyChunksFile verifies handling of a chunks file
// with no entries.
func TestEngine_ProcessChunks_EmptyChunksFile(t *testing.T) {
	engine := createTestEngine(t)

	chunksPath, tempDir := writeChunksFile(t, []string{})

	outputDir := filepath.Join(tempDir, "output")

	err := engine.ProcessChunks(chunksPath, outputDir)
	if err == nil {
		t.Fatal("Expected error for empty chunks file, got nil")
	}
}

// TestEngine_ProcessChunks_EmptyArguments verifies validation of the path
// arguments.
func TestEngine_ProcessChunks_EmptyArguments(t *testing.T) {
	engine := createTestEngine(t)

	if err := engine.ProcessChunks("", "/tmp/out"); err == nil {
		t.Fatal("Expected error for empty chunks path, got nil")
	}

	if err := engine.ProcessChunks("/tmp/chunks.json", ""); err == nil {
		t.Fatal("Expected error for empty output directory, got nil")
	}
}
