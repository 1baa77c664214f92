package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"NavEngine/pkg/nav/api"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nav.yaml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.NavMode() != api.ModeFragment {
		t.Fatalf("default mode = %v, want fragment", cfg.NavMode())
	}
	if cfg.Workspace != "workspace" || cfg.StartPath != "/" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_ReadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	content := "mode: path\nbasename: /app\nworkspace: /tmp/navws\nstart_path: /home\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NavMode() != api.ModePath {
		t.Fatalf("mode = %v, want path", cfg.NavMode())
	}
	if cfg.Basename != "/app" || cfg.Workspace != "/tmp/navws" || cfg.StartPath != "/home" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_MalformedYamlErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	if err := os.WriteFile(path, []byte("mode: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	// Still usable defaults.
	if cfg.Workspace != "workspace" {
		t.Fatalf("fallback config = %+v", cfg)
	}
}

func TestAddressHistory_AppendAndLoad(t *testing.T) {
	h, err := NewAddressHistory(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"/a", "/b"} {
		if err := h.Append(p); err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}

	paths, err := h.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != "/a" || paths[1] != "/b" {
		t.Fatalf("paths = %v", paths)
	}
}
