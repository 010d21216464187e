package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/PoliNetworkOrg/uniqueint/pkg/utils"
	"github.com/pborman/getopt/v2"
)

var errHelp = errors.New("help requested")

type Opts struct {
	inputPath  string
	outputPath string

	inputDir  string
	outputDir string
	isTmpDir  bool
}

func (o Opts) isDirMode() bool {
	return o.inputDir != ""
}

func newOptionSet(program string) *getopt.Set {
	set := getopt.New()
	set.SetProgram(program)
	set.SetParameters("[INPUT OUTPUT]")
	return set
}

// ParseOpts parses args (args[0] is the program name). It returns errHelp
// when --help is given; usage text is written to usage in that case and on
// any error.
func ParseOpts(args []string, usage io.Writer) (Opts, error) {
	set := newOptionSet(filepath.Base(args[0]))

	// definition
	help := set.BoolLong("help", 'h', "Shows the help menu")
	inputDir := set.StringLong("input-dir", 'i', "", "Process every file of this folder instead of a single INPUT")
	outputDir := set.StringLong("output-dir", 'o', "", "Folder receiving <name>_results.txt files. Defaults to tmp directory")

	// parsing
	if err := set.Getopt(args, nil); err != nil {
		set.PrintUsage(usage)
		return Opts{}, err
	}

	if *help {
		set.PrintUsage(usage)
		return Opts{}, errHelp
	}

	opts, err := validate(set.Args(), *inputDir, *outputDir)
	if err != nil {
		set.PrintUsage(usage)
		return Opts{}, err
	}

	return opts, nil
}

func validate(positional []string, inputDir, outputDir string) (Opts, error) {
	if inputDir == "" {
		if outputDir != "" {
			return Opts{}, errors.New("--output-dir requires --input-dir")
		}
		if len(positional) != 2 {
			return Opts{}, fmt.Errorf("expected INPUT and OUTPUT paths, got %d argument(s)", len(positional))
		}

		in, err := filepath.Abs(positional[0])
		if err != nil {
			return Opts{}, err
		}
		out, err := filepath.Abs(positional[1])
		if err != nil {
			return Opts{}, err
		}

		return Opts{inputPath: in, outputPath: out}, nil
	}

	if len(positional) != 0 {
		return Opts{}, errors.New("INPUT and OUTPUT cannot be combined with --input-dir")
	}

	absInputDir, err := filepath.Abs(inputDir)
	if err != nil {
		return Opts{}, err
	}

	inputDirExists, err := utils.DoFolderExists(absInputDir)
	if err != nil {
		return Opts{}, err
	}
	if !inputDirExists {
		return Opts{}, fmt.Errorf("--input-dir %s is not an existing directory", absInputDir)
	}

	isTmpDir := false
	if outputDir == "" {
		outputDir, err = utils.TmpDirectory()
		if err != nil {
			return Opts{}, err
		}
		isTmpDir = true
	}

	absOutputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return Opts{}, err
	}

	return Opts{
		inputDir:  absInputDir,
		outputDir: absOutputDir,
		isTmpDir:  isTmpDir,
	}, nil
}
