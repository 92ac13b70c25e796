package exporter

import (
	"strings"

	"nodeparser/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "json":
			exporters = append(exporters, NewJSONExporter())
		case "word", "docx":
			exporters = append(exporters, word.NewWordExporter())
		}
	}

	return exporters
}
