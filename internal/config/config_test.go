package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "./output" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "./output")
	}
	if cfg.ArchiveDir != "./archive" {
		t.Errorf("ArchiveDir = %q, want %q", cfg.ArchiveDir, "./archive")
	}
	if cfg.ArchiveInputs {
		t.Error("ArchiveInputs should default to false")
	}
	if cfg.OutputNameFormat != "{name}_{timestamp}" {
		t.Errorf("OutputNameFormat = %q", cfg.OutputNameFormat)
	}
	if cfg.DefaultHorizon != "all" {
		t.Errorf("DefaultHorizon = %q, want %q", cfg.DefaultHorizon, "all")
	}
	if cfg.TopScents != 10 {
		t.Errorf("TopScents = %d, want 10", cfg.TopScents)
	}
	if cfg.FragranceLoad != planner.DefaultFragranceLoad {
		t.Errorf("FragranceLoad = %v, want %v", cfg.FragranceLoad, planner.DefaultFragranceLoad)
	}
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, "output_dir: /tmp/plans\ndefault_horizon: week\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/tmp/plans" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.DefaultHorizon != "week" {
		t.Errorf("DefaultHorizon = %q", cfg.DefaultHorizon)
	}
	// Untouched settings keep their defaults.
	if cfg.TopScents != 10 {
		t.Errorf("TopScents = %d, want 10", cfg.TopScents)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "output_dir: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_InvalidHorizonRejected(t *testing.T) {
	path := writeConfig(t, "default_horizon: someday\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoad_UnknownKeywordFieldRejected(t *testing.T) {
	path := writeConfig(t, "column_keywords:\n  NOPE: [\"X\"]\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoad_ColumnKeywordOverrides(t *testing.T) {
	path := writeConfig(t, "column_keywords:\n  DEADLINE: [\"DISPATCH BY\"]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	keywords := cfg.PlannerKeywords()
	got, ok := keywords[planner.FieldDeadline]
	if !ok || len(got) != 1 || got[0] != "DISPATCH BY" {
		t.Errorf("deadline keywords = %v, want [DISPATCH BY]", got)
	}
}

func TestParseHorizon(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"all", HorizonAll, false},
		{"", HorizonAll, false},
		{"URGENT", 1, false},
		{"3days", 3, false},
		{"week", 7, false},
		{"14", 14, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"someday", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			got, err := ParseHorizon(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseHorizon(%q): expected error", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHorizon(%q) failed: %v", tc.value, err)
			}
			if got != tc.want {
				t.Errorf("ParseHorizon(%q) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}
}
