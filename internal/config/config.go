// =============================================================================
// 7 Aromas Production Planner - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The tool
// runs fine with no config file at all: every setting has a default, and the
// file only needs to name what it changes.
//
// CONFIGURABLE AREAS:
//   - Output: where the worksheet and export land, file naming
//   - Archival: whether/where processed exports are moved
//   - Planning: default deadline horizon, chart size, fragrance load
//   - Column keywords: per-field overrides for the header resolver, for
//     marketplaces whose exports name columns differently
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds all application settings.
type Config struct {
	// OutputDir is where the worksheet HTML and XLSX export are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where processed exports are moved when ArchiveInputs
	// is set. Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveInputs moves the input file to ArchiveDir after a successful
	// run. Default: false
	ArchiveInputs bool `yaml:"archive_inputs"`

	// OutputNameFormat names the generated files. Placeholders:
	//   {name}      - base name of the input file
	//   {timestamp} - YYYYMMDD_HHMMSS
	//   {uuid}      - a random UUID
	// The extension is appended per artifact. Default: "{name}_{timestamp}"
	OutputNameFormat string `yaml:"output_name_format"`

	// DefaultHorizon is the horizon preset used when the --horizon flag is
	// absent: "all", "urgent", "3days", "week", or an integer day count.
	// Default: "all"
	DefaultHorizon string `yaml:"default_horizon"`

	// TopScents is how many scents the worksheet bar chart shows.
	// Default: 10
	TopScents int `yaml:"top_scents"`

	// FragranceLoad is the fragrance concentrate fraction of wax mass used
	// for material estimates. Default: 0.10
	FragranceLoad float64 `yaml:"fragrance_load"`

	// ColumnKeywords overrides the header-resolver keyword list for a
	// semantic field, e.g.
	//   column_keywords:
	//     DEADLINE: ["DISPATCH BY", "SHIP"]
	// Fields not listed keep their built-in keywords.
	ColumnKeywords map[string][]string `yaml:"column_keywords"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at path. A missing file is not an
// error; defaults apply. A present but unparseable file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills in every unset option.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{name}_{timestamp}"
	}
	if cfg.DefaultHorizon == "" {
		cfg.DefaultHorizon = "all"
	}
	if cfg.TopScents <= 0 {
		cfg.TopScents = 10
	}
	if cfg.FragranceLoad <= 0 {
		cfg.FragranceLoad = planner.DefaultFragranceLoad
	}
}

// validate rejects settings the run could only fail on later.
func validate(cfg *Config) error {
	if _, err := ParseHorizon(cfg.DefaultHorizon); err != nil {
		return err
	}
	for field := range cfg.ColumnKeywords {
		if _, ok := planner.DefaultFieldKeywords[planner.Field(field)]; !ok {
			return fmt.Errorf("column_keywords: unknown field %q", field)
		}
	}
	return nil
}

// PlannerKeywords converts the YAML override map to the planner's field
// keys. validate has already rejected unknown fields.
func (c *Config) PlannerKeywords() map[planner.Field][]string {
	if len(c.ColumnKeywords) == 0 {
		return nil
	}
	keywords := make(map[planner.Field][]string, len(c.ColumnKeywords))
	for field, list := range c.ColumnKeywords {
		keywords[planner.Field(field)] = list
	}
	return keywords
}

// =============================================================================
// HORIZON PRESETS
// =============================================================================

// HorizonAll is the "no limit" day count; no marketplace schedules shipping
// decades out.
const HorizonAll = 9999

// ParseHorizon turns a horizon preset or integer day count into days:
// "all" (no limit), "urgent" (1), "3days" (3), "week" (7), or any
// non-negative integer.
func ParseHorizon(value string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all", "":
		return HorizonAll, nil
	case "urgent":
		return 1, nil
	case "3days":
		return 3, nil
	case "week":
		return 7, nil
	}

	days, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || days < 0 {
		return 0, fmt.Errorf("invalid horizon %q (want all, urgent, 3days, week, or a day count)", value)
	}
	return days, nil
}
