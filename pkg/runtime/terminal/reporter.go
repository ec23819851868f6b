package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONReporter writes API-shaped results as indented JSON.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a reporter writing to writer, stdout when nil.
func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (c *JSONReporter) Handle(v any) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
