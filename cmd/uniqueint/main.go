package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/PoliNetworkOrg/uniqueint/pkg/logger"
	"github.com/PoliNetworkOrg/uniqueint/pkg/uniqueint"
	"github.com/lmittmann/tint"
)

const (
	exitOk      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	slog.SetDefault(logger.GetDefaultLogger())
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, err := ParseOpts(args, os.Stderr)
	if errors.Is(err, errHelp) {
		return exitOk
	}
	if err != nil {
		slog.Error("argv validation failed", tint.Err(err))
		return exitUsage
	}

	pipeline := uniqueint.New(uniqueint.NewLogObserver(slog.Default()))
	domain := pipeline.Domain()
	slog.Debug("accepted integer range", "min", domain.Min, "max", domain.Max)

	if !opts.isDirMode() {
		slog.Info("argv validation", "input", opts.inputPath, "output", opts.outputPath)
		if _, err := pipeline.Process(opts.inputPath, opts.outputPath); err != nil {
			return exitFailure
		}
		return exitOk
	}

	if opts.isTmpDir {
		slog.Warn("ATTENTION! using tmp directory as output. Check --help for more information on output dir.", "output_dir", opts.outputDir)
	} else {
		slog.Info("argv validation", "input_dir", opts.inputDir, "output_dir", opts.outputDir)
	}

	report, err := pipeline.ProcessDir(opts.inputDir, opts.outputDir)
	slog.Info("batch done", "processed", len(report.Results), "succeeded", report.Succeeded(), "failed", report.Failed())
	if err != nil {
		return exitFailure
	}

	return exitOk
}
