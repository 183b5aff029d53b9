// Package batch provides parallel processing of text chunk files, normalizing
// each chunk for speech synthesis and writing the results to disk.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/book-expert/logger"

	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/book-expert/text-normalizer/internal/fsutil"
	"github.com/book-expert/text-normalizer/internal/normalizer"
)

// File permissions for generated chunk files.
const filePermissions = 0o600

// Static errors.
var (
	ErrChunksPathEmpty = errors.New("chunks path cannot be empty")
	ErrOutputDirEmpty  = errors.New("output directory cannot be empty")
	ErrTextEmpty       = errors.New("text cannot be empty")
	ErrOutputPathEmpty = errors.New("output path cannot be empty")
	ErrNoChunksFound   = errors.New("no chunks found")
	ErrChunksFileType  = errors.New("chunks file must have a text extension")
)

// Helper functions for dynamic error messages.
func newNoChunksFoundError(path string) error {
	return fmt.Errorf("%w in %s", ErrNoChunksFound, path)
}

const (
	// Log formats and file patterns.
	logFmtProcessingChunks      = "Normalizing %d chunks with %d workers"
	logFmtWroteChunk            = "Wrote normalized chunk: %s (%d bytes)"
	outputFileFormat            = "chunk_%04d.txt"
	errFmtChunkFailed           = "chunk %d failed: %w"
	logFmtChunkProcessingFailed = "Failed to process chunk %d: %v"
	logFmtChunkProcessed        = "Processed chunk %d/%d"
)

// Engine normalizes text chunks in parallel and writes the results to a
// directory of sequentially named files. It manages worker concurrency and
// error handling while delegating the actual text transformation to the
// normalization pipeline.
type Engine struct {
	pipeline core.TextNormalizer
	opts     normalizer.Options
	workers  int
	logger   *logger.Logger
}

// NewEngine creates a batch normalization engine. The workers count bounds
// the number of chunks processed concurrently; values below one are treated
// as one.
func NewEngine(
	pipeline core.TextNormalizer,
	opts normalizer.Options,
	workers int,
	log *logger.Logger,
) *Engine {
	if workers < 1 {
		workers = 1
	}

	return &Engine{
		pipeline: pipeline,
		opts:     opts,
		workers:  workers,
		logger:   log,
	}
}

// ProcessChunks processes a JSON file containing text chunks, normalizing each
// chunk in parallel according to the configured worker count. Output files are
// named sequentially (chunk_0001.txt, chunk_0002.txt, etc.).
func (e *Engine) ProcessChunks(chunksPath, outputDir string) error {
	inputErr := e.validateChunkInputs(chunksPath, outputDir)
	if inputErr != nil {
		return inputErr
	}

	chunks, prepErr := e.prepareChunkProcessing(chunksPath, outputDir)
	if prepErr != nil {
		return prepErr
	}

	e.logger.Info(logFmtProcessingChunks, len(chunks), e.workers)

	return e.processChunksParallel(chunks, outputDir)
}

// NormalizeText normalizes a single text string and returns the result
// without touching the filesystem.
func (e *Engine) NormalizeText(text string) (string, error) {
	if text == "" {
		return "", ErrTextEmpty
	}

	return e.pipeline.Normalize(text, e.opts), nil
}

// ProcessSingleChunk normalizes a single text string and writes the result to
// the specified output path. The method handles directory creation and file
// writing.
//
// This method is suitable for processing individual text inputs or as part
// of a larger batch processing workflow.
func (e *Engine) ProcessSingleChunk(text, outputPath string) error {
	inputErr := e.validateSingleChunkInputs(text, outputPath)
	if inputErr != nil {
		return inputErr
	}

	prepErr := fsutil.EnsureDir(filepath.Dir(outputPath))
	if prepErr != nil {
		return prepErr
	}

	normalized := e.pipeline.Normalize(text, e.opts)

	writeErr := os.WriteFile(outputPath, []byte(normalized), filePermissions)
	if writeErr != nil {
		return fmt.Errorf("failed to write normalized chunk: %w", writeErr)
	}

	e.logger.Info(logFmtWroteChunk, outputPath, len(normalized))

	return nil
}

func (e *Engine) validateChunkInputs(chunksPath, outputDir string) error {
	if chunksPath == "" {
		return ErrChunksPathEmpty
	}

	if outputDir == "" {
		return ErrOutputDirEmpty
	}

	if !fsutil.IsValidTextFile(chunksPath) {
		return fmt.Errorf("%w: %s", ErrChunksFileType, chunksPath)
	}

	return nil
}

func (e *Engine) validateSingleChunkInputs(text, outputPath string) error {
	if text == "" {
		return ErrTextEmpty
	}

	if outputPath == "" {
		return ErrOutputPathEmpty
	}

	return nil
}

func (e *Engine) prepareChunkProcessing(
	chunksPath, outputDir string,
) ([]string, error) {
	chunks, chunksErr := e.readChunksFile(chunksPath)
	if chunksErr != nil {
		return nil, fmt.Errorf("failed to read chunks: %w", chunksErr)
	}

	dirErr := fsutil.EnsureDir(outputDir)
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", dirErr)
	}

	return chunks, nil
}

// readChunksFile reads and parses a JSON file containing an array of text
// chunks. The file must contain a valid JSON array of strings, with each
// string representing a text chunk to be normalized.
func (e *Engine) readChunksFile(chunksPath string) ([]string, error) {
	data, err := os.ReadFile(chunksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Parse JSON chunks as array of strings
	var chunks []string

	err = parseJSON(data, &chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chunks JSON: %w", err)
	}

	if len(chunks) == 0 {
		return nil, newNoChunksFoundError(chunksPath)
	}

	return chunks, nil
}

// processChunksParallel processes chunks concurrently using a worker pool
// pattern. The number of concurrent workers is controlled by the engine
// configuration.
//
// Errors from individual chunks are captured and reported, but processing
// continues for remaining chunks to maximize the amount of work completed.
func (e *Engine) processChunksParallel(chunks []string, outputDir string) error {
	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		lastError error
	)

	// Create worker pool to control concurrency
	workerPool := make(chan struct{}, e.workers)

	for chunkIndex, chunk := range chunks {
		waitGroup.Add(1)

		go func(index int, text string) {
			defer waitGroup.Done()

			// Acquire worker slot to control concurrency
			workerPool <- struct{}{}

			defer func() { <-workerPool }()

			// Generate sequential output filename
			outputPath := filepath.Join(
				outputDir,
				fmt.Sprintf(outputFileFormat, index+1),
			)

			// Process individual chunk
			err := e.ProcessSingleChunk(text, outputPath)
			if err != nil {
				// Capture error while allowing other chunks to continue
				mutex.Lock()

				lastError = fmt.Errorf(
					errFmtChunkFailed,
					index+1,
					err,
				)

				mutex.Unlock()
				e.logger.Error(
					logFmtChunkProcessingFailed,
					index+1,
					err,
				)

				return
			}

			e.logger.Info(logFmtChunkProcessed, index+1, len(chunks))
		}(chunkIndex, chunk)
	}

	waitGroup.Wait()
	close(workerPool)

	return lastError
}
