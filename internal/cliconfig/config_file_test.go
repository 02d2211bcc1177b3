package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				ConsoleType:   "file-console",
				APIKey:        "file-key",
				FlushInterval: "20s",
				BatchMode:     &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				ConsoleType:   "file-console",
				APIKey:        "file-key",
				FlushInterval: 20 * time.Second,
				BatchMode:     true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ConsoleType: "file-console",
				APIKey:      "file-key",
				Gzip:        &trueVal,
			},
			changed: map[string]bool{"console-type": true, "gzip": true},
			initial: Config{ConsoleType: "flag-console"},
			expected: Config{
				ConsoleType: "flag-console", // unchanged because flag was set
				APIKey:      "file-key",
			},
		},
		{
			name:       "explicit false overrides default",
			fileConfig: FileConfig{BatchMode: &falseVal},
			changed:    map[string]bool{},
			initial:    Config{BatchMode: true},
			expected:   Config{},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{HTTPTimeout: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := strings.TrimSpace(`
console_type = "toml-console"
api_key = "toml-key"
endpoint_style = "server"
client_type = "DESKTOP"
os = "mac"
batch_mode = true
flush_interval = "15s"
gzip = false
metrics_addr = "127.0.0.1:9100"
`)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() unexpected error: %v", err)
	}

	if fc.ConsoleType != "toml-console" {
		t.Errorf("ConsoleType = %v, want toml-console", fc.ConsoleType)
	}
	if fc.EndpointStyle != "server" {
		t.Errorf("EndpointStyle = %v, want server", fc.EndpointStyle)
	}
	if fc.BatchMode == nil || !*fc.BatchMode {
		t.Errorf("BatchMode = %v, want true", fc.BatchMode)
	}
	if fc.Gzip == nil || *fc.Gzip {
		t.Errorf("Gzip = %v, want false", fc.Gzip)
	}
	if fc.FromStart != nil {
		t.Errorf("FromStart = %v, want nil", fc.FromStart)
	}
	if fc.FlushInterval != "15s" {
		t.Errorf("FlushInterval = %v, want 15s", fc.FlushInterval)
	}
	if fc.MetricsAddr != "127.0.0.1:9100" {
		t.Errorf("MetricsAddr = %v, want 127.0.0.1:9100", fc.MetricsAddr)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("console_type = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists() = true for missing file")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.HasSuffix(path, filepath.Join(".concordlog", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q", path)
	}
}
