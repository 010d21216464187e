package uniqueint

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/PoliNetworkOrg/uniqueint/pkg/constants"
	"github.com/PoliNetworkOrg/uniqueint/pkg/utils"
	"github.com/PoliNetworkOrg/uniqueint/pkg/writer"
)

type FileResult struct {
	Input  string
	Output string
	Count  int
	Err    error
}

type BatchReport struct {
	Results []FileResult
}

func (r BatchReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

func (r BatchReport) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// ProcessDir processes every regular file of inputDir, writing
// <name>_results.txt into outputDir (created if missing). Files already
// carrying the results suffix are skipped. A failing file
// does not stop the others; the returned error joins every failure.
func (p *Pipeline) ProcessDir(inputDir, outputDir string) (BatchReport, error) {
	report := BatchReport{}

	names, err := utils.ListFilesInFolder(inputDir)
	if err != nil {
		err = &ReadError{Path: inputDir, Err: err}
		p.observer.Failed(inputDir, err)
		return report, err
	}

	w, err := writer.NewWriter(outputDir)
	if err != nil {
		err = &WriteError{Path: outputDir, Err: err}
		p.observer.Failed(outputDir, err)
		return report, err
	}

	var errs []error
	for _, name := range names {
		// results of an earlier run into the same folder
		if strings.HasSuffix(name, constants.ResultsSuffix) {
			continue
		}

		resultsName := utils.MakeResultsFilename(name)
		res := FileResult{
			Input:  filepath.Join(inputDir, name),
			Output: w.GetFilePath(resultsName),
		}

		values, err := p.process(res.Input, res.Output, func(lines []string) error {
			return w.WriteLines(resultsName, lines)
		})
		res.Count = len(values)
		res.Err = err
		if err != nil {
			errs = append(errs, err)
		}

		report.Results = append(report.Results, res)
	}

	return report, errors.Join(errs...)
}
