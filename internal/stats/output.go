package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Output appends round records to rounds.csv in a directory.
type Output struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewOutput creates dir and rounds.csv inside it. Returns nil if dir is empty
// (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}
	return &Output{dir: dir, file: f}, nil
}

// Dir returns the output directory.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Write appends one record, emitting the header on first use.
func (o *Output) Write(rec Record) error {
	return o.WriteAll([]Record{rec})
}

// WriteAll appends records, emitting the header on first use.
func (o *Output) WriteAll(records []Record) error {
	if o == nil || len(records) == 0 {
		return nil
	}
	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.file); err != nil {
			return fmt.Errorf("writing rounds: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.file); err != nil {
		return fmt.Errorf("writing rounds: %w", err)
	}
	return nil
}

// Close closes the CSV file.
func (o *Output) Close() error {
	if o == nil {
		return nil
	}
	return o.file.Close()
}
