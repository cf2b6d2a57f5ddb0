// Package batch fans the statement pipeline out over a set of input
// files with per-file failure isolation.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ekstre-dev/ekstre/internal/importer"
	"github.com/ekstre-dev/ekstre/internal/model"
	"github.com/ekstre-dev/ekstre/internal/statement"
)

// Options configures a batch run.
type Options struct {
	Mode      statement.Mode
	Cutoff    time.Time // required in dated mode
	HeaderRow int       // 0-based header row offset in the source sheets

	// Progress, when set, is called before each file is processed.
	Progress func(index, total int, name string)
}

// FileError records one file's failure.
type FileError struct {
	File    string
	Message string
}

// Outcome partitions a run's per-file successes and failures. A
// failure on one file never aborts the others.
type Outcome struct {
	Results []model.Result
	Files   []string // input path per result, parallel to Results
	Errors  []FileError
}

// Run processes files strictly sequentially in input order. Each
// statement is independent, so callers could parallelize this; kept
// sequential to match the one-writer output model.
func Run(files []string, opts Options) Outcome {
	reg := importer.DefaultRegistry()
	var out Outcome
	for i, path := range files {
		if opts.Progress != nil {
			opts.Progress(i+1, len(files), filepath.Base(path))
		}
		res, err := processOne(reg, path, opts)
		if err != nil {
			out.Errors = append(out.Errors, FileError{
				File:    filepath.Base(path),
				Message: err.Error(),
			})
			continue
		}
		out.Results = append(out.Results, res)
		out.Files = append(out.Files, path)
	}
	return out
}

func processOne(reg *importer.Registry, path string, opts Options) (model.Result, error) {
	rows, err := importer.ReadFile(reg, path, opts.HeaderRow)
	if err != nil {
		return model.Result{}, err
	}
	return statement.Process(rows, opts.Mode, opts.Cutoff)
}

// Summary is the user-facing account of a run.
type Summary struct {
	Succeeded     int
	Failed        int
	WarningBlocks []string // one block per file that had warnings
	ErrorLines    []string // one line per failed file
}

// Summarize renders the outcome for display.
func (o Outcome) Summarize() Summary {
	s := Summary{Succeeded: len(o.Results), Failed: len(o.Errors)}
	for i, res := range o.Results {
		if len(res.Warnings) == 0 {
			continue
		}
		name := filepath.Base(o.Files[i])
		s.WarningBlocks = append(s.WarningBlocks,
			fmt.Sprintf("%s:\n  - %s", name, strings.Join(res.Warnings, "\n  - ")))
	}
	for _, fe := range o.Errors {
		s.ErrorLines = append(s.ErrorLines, fmt.Sprintf("%s: %s", fe.File, fe.Message))
	}
	return s
}
