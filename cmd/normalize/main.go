// main package for the normalize command-line client
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/book-expert/logger"

	"github.com/book-expert/text-normalizer/internal/batch"
	"github.com/book-expert/text-normalizer/internal/config"
	"github.com/book-expert/text-normalizer/internal/fsutil"
	"github.com/book-expert/text-normalizer/internal/normalizer"
)

// Flag descriptions and messages.
const (
	flagTextDesc    = "Text to normalize (result is printed to stdout unless --output is set)"
	flagOutputDesc  = "Output file path (--text) or output directory (--chunks)"
	flagChunksDesc  = "JSON file containing text chunks to normalize"
	flagUnitsDesc   = "Expand measurement units into words"
	flagVerboseDesc = "Enable verbose logging"
)

// Flag names.
const (
	flagText    = "text"
	flagOutput  = "output"
	flagChunks  = "chunks"
	flagUnits   = "units"
	flagVerbose = "verbose"
)

// Error and log messages.
const (
	errFailedToInitLogger    = "failed to initialize logger: %w"
	errEitherTextOrChunks    = "either --text or --chunks must be provided"
	errCannotSpecifyBoth     = "cannot specify both --text and --chunks"
	errFailedToProcessText   = "failed to process text: %w"
	errFailedToProcessChunks = "failed to process chunks: %w"
)

// Log messages.
const (
	logUsingDefaults         = "No configuration found, using defaults: %v"
	logProcessingSingleText  = "Normalizing single text to: %s"
	logProcessingChunks      = "Normalizing chunks from: %s"
	logOutputDirectory       = "Output directory: %s"
	logSuccessfullyProcessed = "Successfully normalized all chunks"
	logWroteFiles            = "Wrote normalized chunks to: %s\n"
)

// File names and paths.
const (
	logFileNameDefault = "normalize.log"
	logFileNameVerbose = "normalize-verbose.log"
	defaultOutputDir   = "normalized"
	defaultOutputExt   = ".txt"
)

// appFlags holds the parsed command-line flag values.
type appFlags struct {
	text    string
	output  string
	chunks  string
	units   bool
	verbose bool
}

func main() {
	err := run()
	if err != nil {
		// A logger might not be initialized yet, so use the standard log package.
		log.Fatalf("Error: %v", err)
	}
}

// run is the main application entry point, returning an error on failure.
func run() error {
	flags := parseFlags()

	appLogger, err := setupLogger(flags.verbose)
	if err != nil {
		return err
	}
	defer appLogger.Close()

	normalization, workers := loadSettings(appLogger)
	if flags.units {
		normalization.UnitNormalization = true
	}

	engine := batch.NewEngine(
		normalizer.New(),
		normalization.Options(),
		workers,
		appLogger,
	)

	return handleExecution(engine, appLogger, flags)
}

// parseFlags defines and parses command-line flags, returning them in a struct.
func parseFlags() appFlags {
	var flags appFlags
	flag.StringVar(&flags.text, flagText, "", flagTextDesc)
	flag.StringVar(&flags.output, flagOutput, "", flagOutputDesc)
	flag.StringVar(&flags.chunks, flagChunks, "", flagChunksDesc)
	flag.BoolVar(&flags.units, flagUnits, false, flagUnitsDesc)
	flag.BoolVar(&flags.verbose, flagVerbose, false, flagVerboseDesc)
	flag.Parse()

	return flags
}

func setupLogger(verbose bool) (*logger.Logger, error) {
	logFileName := logFileNameDefault
	if verbose {
		logFileName = logFileNameVerbose
	}

	appLogger, err := logger.New(os.TempDir(), logFileName)
	if err != nil {
		return nil, fmt.Errorf(errFailedToInitLogger, err)
	}

	return appLogger, nil
}

// loadSettings loads the normalization switches and worker count from the
// project configuration, falling back to built-in defaults when no
// configuration is available. The CLI stays usable outside a deployment.
func loadSettings(appLogger *logger.Logger) (config.NormalizationConfig, int) {
	cfg, err := config.Load(appLogger)
	if err != nil {
		appLogger.Warn(logUsingDefaults, err)

		return config.DefaultNormalization(), 0
	}

	return cfg.Normalization, cfg.Batch.Workers
}

// handleExecution validates flags and dispatches to the correct processing function.
func handleExecution(
	engine *batch.Engine,
	appLogger *logger.Logger,
	flags appFlags,
) error {
	if flags.text == "" && flags.chunks == "" {
		flag.Usage()
		appLogger.Error(errEitherTextOrChunks)

		return errors.New(errEitherTextOrChunks)
	}

	if flags.text != "" && flags.chunks != "" {
		appLogger.Error(errCannotSpecifyBoth)

		return errors.New(errCannotSpecifyBoth)
	}

	if flags.text != "" {
		return processSingleText(engine, appLogger, flags.text, flags.output)
	}

	return processChunks(engine, appLogger, flags.chunks, flags.output)
}

// processSingleText normalizes one text string, writing to the output path
// when given and to stdout otherwise. The output filename is sanitized and
// defaulted to a .txt extension when none is given.
func processSingleText(
	engine *batch.Engine,
	appLogger *logger.Logger,
	text, outputFlag string,
) error {
	if outputFlag == "" {
		normalized, err := engine.NormalizeText(text)
		if err != nil {
			appLogger.Error("Failed to normalize text: %v", err)

			return fmt.Errorf(errFailedToProcessText, err)
		}

		fmt.Println(normalized)

		return nil
	}

	outputPath := filepath.Join(
		filepath.Dir(outputFlag),
		fsutil.SanitizeFilename(filepath.Base(outputFlag)),
	)
	if fsutil.GetFileExtension(outputPath) == "" {
		outputPath += defaultOutputExt
	}

	appLogger.Info(logProcessingSingleText, outputPath)

	err := engine.ProcessSingleChunk(text, outputPath)
	if err != nil {
		appLogger.Error("Failed to normalize text: %v", err)

		return fmt.Errorf(errFailedToProcessText, err)
	}

	fmt.Printf("Wrote: %s\n", outputPath)

	return nil
}

// processChunks normalizes a file of text chunks into the output directory.
func processChunks(
	engine *batch.Engine,
	appLogger *logger.Logger,
	chunksPath, outputFlag string,
) error {
	outputDir := outputFlag
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	appLogger.Info(logProcessingChunks, chunksPath)
	appLogger.Info(logOutputDirectory, outputDir)

	err := engine.ProcessChunks(chunksPath, outputDir)
	if err != nil {
		appLogger.Error("Failed to normalize chunks: %v", err)

		return fmt.Errorf(errFailedToProcessChunks, err)
	}

	appLogger.Info(logSuccessfullyProcessed)
	fmt.Printf(logWroteFiles, outputDir)

	return nil
}
