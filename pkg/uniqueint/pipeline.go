package uniqueint

import (
	"os"

	"github.com/PoliNetworkOrg/uniqueint/pkg/writer"
)

// Pipeline turns an input file of candidate tokens into a sorted file of
// unique integers. Invocations share no state.
type Pipeline struct {
	domain   Domain
	observer Observer
}

// New returns a Pipeline over DefaultDomain. A nil observer is replaced by
// NopObserver.
func New(observer Observer) *Pipeline {
	return NewWithDomain(DefaultDomain, observer)
}

func NewWithDomain(domain Domain, observer Observer) *Pipeline {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Pipeline{domain: domain, observer: observer}
}

func (p *Pipeline) Domain() Domain {
	return p.domain
}

// Process reads inputPath, filters it and writes the sorted unique values to
// outputPath, one per line. It returns the written values.
//
// Errors are *ReadError (outputPath untouched) or *WriteError.
func (p *Pipeline) Process(inputPath, outputPath string) ([]int, error) {
	return p.process(inputPath, outputPath, func(lines []string) error {
		return writer.WriteLines(outputPath, lines)
	})
}

// process runs one invocation; write stores the formatted lines at
// outputPath, which is only used for reporting.
func (p *Pipeline) process(inputPath, outputPath string, write func([]string) error) ([]int, error) {
	p.observer.Processing(inputPath)

	content, err := os.ReadFile(inputPath)
	if err != nil {
		err = &ReadError{Path: inputPath, Err: err}
		p.observer.Failed(inputPath, err)
		return nil, err
	}
	p.observer.Loaded(inputPath, len(content))

	values := Filter(string(content), p.domain)
	p.observer.Filtered(inputPath, values)

	if err := write(FormatLines(values)); err != nil {
		err = &WriteError{Path: outputPath, Err: err}
		p.observer.Failed(outputPath, err)
		return nil, err
	}

	p.observer.Written(outputPath, len(values))
	return values, nil
}
