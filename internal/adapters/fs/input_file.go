package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/reaction"
)

// StdinPath selects standard input as the batch source. Stdin is read as JSON.
const StdinPath = "-"

var (
	// ErrUnsupportedFormat is returned for input files with an unknown extension.
	ErrUnsupportedFormat = errors.New("stoich: unsupported input format")

	// ErrNoInput is returned when no input path is configured.
	ErrNoInput = errors.New("stoich: no input")
)

// Format identifies how a batch file is encoded.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	if path == StdinPath {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// InputFile implements ports.InputSource for a batch file on disk.
type InputFile struct {
	path  string
	stdin io.Reader
}

// NewInputFile creates an InputFile. Use StdinPath to read from os.Stdin.
func NewInputFile(path string) *InputFile {
	return &InputFile{path: path, stdin: os.Stdin}
}

// Path returns the configured input path.
func (f *InputFile) Path() string {
	return f.path
}

// Load reads and decodes every record in file order. Records are not
// validated here; that is the calculator's job. A record that cannot be
// decoded keeps its position and carries the error, so only a file that
// cannot be parsed as a whole fails the load.
func (f *InputFile) Load(ctx context.Context) ([]batch.Item, error) {
	if f.path == "" {
		return nil, ErrNoInput
	}
	format, err := DetectFormat(f.path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if f.path == StdinPath {
		data, err = io.ReadAll(f.stdin)
	} else {
		data, err = os.ReadFile(f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return items, nil
}

// Decode parses a batch encoded in the given format. The document structure
// (a JSON array, a YAML sequence, or lines) must parse; individual records
// that fail to decode are returned as items with Err set.
func Decode(data []byte, format Format) ([]batch.Item, error) {
	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		items := make([]batch.Item, len(raw))
		for i, msg := range raw {
			items[i] = decodeJSONRecord(msg)
		}
		return items, nil
	case FormatJSONL:
		return decodeJSONLines(data)
	case FormatYAML:
		var nodes []yaml.Node
		if err := yaml.Unmarshal(data, &nodes); err != nil {
			return nil, err
		}
		items := make([]batch.Item, len(nodes))
		for i := range nodes {
			var in reaction.Input
			if err := nodes[i].Decode(&in); err != nil {
				items[i] = batch.Item{Input: in, Err: malformedRecord(reaction.FieldRecord, err)}
				continue
			}
			items[i] = batch.Item{Input: in}
		}
		return items, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// decodeJSONLines treats every non-blank line as one record. Blank lines do
// not take a batch position.
func decodeJSONLines(data []byte) ([]batch.Item, error) {
	var items []batch.Item
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		items = append(items, decodeJSONRecord(text))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeJSONRecord(msg []byte) batch.Item {
	var in reaction.Input
	if err := json.Unmarshal(msg, &in); err != nil {
		field := reaction.FieldRecord
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field = typeErr.Field
		}
		return batch.Item{Input: in, Err: malformedRecord(field, err)}
	}
	return batch.Item{Input: in}
}

func malformedRecord(field string, err error) error {
	return &reaction.InvalidInputError{Field: field, Reason: "malformed record", Cause: err}
}
