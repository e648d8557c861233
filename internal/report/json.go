package report

import (
	"encoding/json"
	"io"

	"github.com/a11yscan/a11yscan/internal/model"
)

// JSONWriter outputs reports as indented JSON for tool integration.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write serializes the full report structure.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
