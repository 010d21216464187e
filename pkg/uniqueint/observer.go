package uniqueint

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
)

// Observer receives progress notifications from a Pipeline. It has no
// influence on the results.
type Observer interface {
	Processing(input string)
	Loaded(input string, size int)
	Filtered(input string, values []int)
	Written(output string, count int)
	Failed(path string, err error)
}

type NopObserver struct{}

func (NopObserver) Processing(string)      {}
func (NopObserver) Loaded(string, int)     {}
func (NopObserver) Filtered(string, []int) {}
func (NopObserver) Written(string, int)    {}
func (NopObserver) Failed(string, error)   {}

// LogObserver reports pipeline progress on a slog.Logger.
type LogObserver struct {
	Logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) Processing(input string) {
	o.Logger.Info("[uniqueint] processing file", "input", input)
}

func (o *LogObserver) Loaded(input string, size int) {
	o.Logger.Debug("[uniqueint] file read", "input", input, "size", humanize.Bytes(uint64(size)))
}

func (o *LogObserver) Filtered(input string, values []int) {
	o.Logger.Debug("[uniqueint] sorted unique numbers", "input", input, "count", len(values), "values", values)
}

func (o *LogObserver) Written(output string, count int) {
	o.Logger.Info("[uniqueint] successful write", "output", output, "count", count)
}

func (o *LogObserver) Failed(path string, err error) {
	o.Logger.Error("[uniqueint] processing failed", "path", path, tint.Err(err))
}
