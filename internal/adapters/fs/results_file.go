package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/stoich/internal/ports"
	"github.com/bft-labs/stoich/pkg/reaction"
)

// ResultsFile implements ports.ResultSink as JSON Lines, one object per
// result. A non-empty path is replaced atomically; an empty path writes to
// the fallback writer (stdout by default).
type ResultsFile struct {
	path     string
	fallback io.Writer
}

// NewResultsFile creates a ResultsFile for path.
func NewResultsFile(path string) *ResultsFile {
	return &ResultsFile{path: path, fallback: os.Stdout}
}

// NewResultsWriter creates a ResultsFile that streams to w.
func NewResultsWriter(w io.Writer) *ResultsFile {
	return &ResultsFile{fallback: w}
}

// WriteResults writes results in order.
func (r *ResultsFile) WriteResults(ctx context.Context, results []reaction.Result) error {
	if r.path == "" {
		return encodeLines(r.fallback, results)
	}
	return writeAtomic(r.path, func(w io.Writer) error {
		return encodeLines(w, results)
	})
}

// Path returns the destination file, or "" for the fallback writer.
func (r *ResultsFile) Path() string {
	return r.path
}

func encodeLines(w io.Writer, results []reaction.Result) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SummaryFile implements ports.SummarySink as an indented JSON document.
type SummaryFile struct {
	path string
}

// NewSummaryFile creates a SummaryFile for path.
func NewSummaryFile(path string) *SummaryFile {
	return &SummaryFile{path: path}
}

// WriteSummary replaces the summary file atomically.
func (s *SummaryFile) WriteSummary(ctx context.Context, summary ports.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}

// writeAtomic writes to path.tmp and renames it over path.
func writeAtomic(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
