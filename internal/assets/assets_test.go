package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sift")

	// First call should create config.yaml with embedded contents
	wrote, err := WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	if !wrote {
		t.Fatalf("expected file to be written")
	}
	p := filepath.Join(dir, ConfigFileName)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(defaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	wrote, err = WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if wrote {
		t.Fatalf("existing file reported as written")
	}
	b2, _ := os.ReadFile(p)
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}

	// WriteDefaultConfig always overwrites
	if err := WriteDefaultConfig(dir); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}
	b3, _ := os.ReadFile(p)
	if string(b3) != string(defaultConfig) {
		t.Fatalf("file not replaced")
	}
}

func TestWriteDefaultConfig_EmptyDir(t *testing.T) {
	if err := WriteDefaultConfig(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestConfigSchemaIsJSON(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(ConfigSchema(), &v); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if len(DefaultConfig()) == 0 {
		t.Fatalf("default config is empty")
	}
}
