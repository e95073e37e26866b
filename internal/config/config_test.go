package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2tex/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stagingDir: build/images\nworkers: 4\nquiet: true\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.StagingDir != "build/images" {
		t.Errorf("StagingDir = %q, want %q", cfg.StagingDir, "build/images")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want %d", cfg.Workers, 4)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    func(*testing.T) string { return "" },
			wantErr: config.ErrEmptyConfigName,
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: config.ErrConfigNotFound,
		},
		{
			name: "unknown field rejected",
			path: func(t *testing.T) string {
				return writeConfig(t, "stagingDir: tmp\nmystery: true\n")
			},
			wantErr: config.ErrConfigParse,
		},
		{
			name: "malformed YAML",
			path: func(t *testing.T) string {
				return writeConfig(t, "stagingDir: [unclosed\n")
			},
			wantErr: config.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadByNameNotFound(t *testing.T) {
	// Name resolution checks the working directory, so no t.Parallel here;
	// a bare name that exists nowhere must fail rather than fall back.
	_, err := config.Load("definitely-not-a-real-config-name")
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("Load() error = %v, want %v", err, config.ErrConfigNotFound)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if cfg.StagingDir != "" || cfg.Workers != 0 || cfg.Quiet {
		t.Errorf("DefaultConfig() = %+v, want zero values", cfg)
	}
}
