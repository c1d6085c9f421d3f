package app

import (
	"errors"

	"github.com/specialistvlad/nagorder/internal/recordfile"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath  string // hcl file or directory
	ResumePath string // saved record, used instead of GraphPath

	SavePath    string
	DotPath     string
	MetricsFile string
	Plan        bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.GraphPath == "" && cfg.ResumePath == "":
		return nil, errors.New("either a graph path or a record to resume from is required")
	case cfg.GraphPath != "" && cfg.ResumePath != "":
		return nil, errors.New("a graph path and a record to resume from cannot be used together")
	}

	for _, p := range []string{cfg.ResumePath, cfg.SavePath} {
		if p == "" {
			continue
		}
		if _, err := recordfile.FormatFor(p); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
