package exporter

import (
	"nodeparser/internal/config"
	"nodeparser/internal/model"
)

// Exporter is the unified interface for all reporting strategies
type Exporter interface {
	Export(rep *model.Report, cfg *config.Config) error
}
