package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"nodeparser/internal/config"
	"nodeparser/internal/model"
)

// JSONExporter writes the extracted hierarchy as a UTF-8 JSON document with
// keys in first-insertion order, 4-space indentation and non-ASCII emitted
// literally. Existing downstream consumers depend on that exact shape.
type JSONExporter struct {
	// Stateless
}

// NewJSONExporter creates a new JSONExporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export writes <BaseName>.json into the output directory.
func (e *JSONExporter) Export(rep *model.Report, cfg *config.Config) error {
	if rep.Hierarchy == nil {
		return fmt.Errorf("no extracted hierarchy to export")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rep.Hierarchy); err != nil {
		return fmt.Errorf("failed to serialize hierarchy: %w", err)
	}
	// Encode appends a newline the document contract does not include.
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	outFile := cfg.OutputPath(rep.BaseName + ".json")
	if err := os.WriteFile(outFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
