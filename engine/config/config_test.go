package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hollowforge/inputbridge/engine/input"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			content: `window:
  width: 800
  height: 600
  title: "Bridge"
  vsync: false
input:
  backend: terminal
  tick_rate: 30
  hold_millis: 150
status:
  sink: log
logging:
  level: debug
  categories: [shell, input]
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Window.Title != "Bridge" {
					t.Errorf("title = %q, want Bridge", cfg.Window.Title)
				}
				if cfg.Window.VSync {
					t.Error("vsync = true, want false")
				}
				if cfg.Input.Backend != "terminal" {
					t.Errorf("backend = %q, want terminal", cfg.Input.Backend)
				}
				if cfg.Input.TickRate != 30 {
					t.Errorf("tick_rate = %d, want 30", cfg.Input.TickRate)
				}
				if cfg.Status.Sink != "log" {
					t.Errorf("sink = %q, want log", cfg.Status.Sink)
				}
				if cfg.Logging.Level != "debug" {
					t.Errorf("level = %q, want debug", cfg.Logging.Level)
				}
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "window:\n  title: Renamed\n",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "Renamed" {
					t.Errorf("title = %q, want Renamed", cfg.Window.Title)
				}
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
					t.Errorf("window = %dx%d, want default 1024x768", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Input.Backend != "window" {
					t.Errorf("backend = %q, want default window", cfg.Input.Backend)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: "window: [not a mapping",
			wantErr: true,
		},
		{
			name:    "bad backend rejected",
			content: "input:\n  backend: joystick\n",
			wantErr: true,
		},
		{
			name:    "bad sink rejected",
			content: "status:\n  sink: popup\n",
			wantErr: true,
		},
		{
			name:    "zero window size rejected",
			content: "window:\n  width: 0\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDirBindings(t *testing.T) {
	cfg := Default()
	bindings, err := cfg.DirBindings()
	if err != nil {
		t.Fatalf("DirBindings: %v", err)
	}
	if dir, ok := bindings.Lookup("up"); !ok || dir != input.DirUp {
		t.Errorf("default bindings missing arrow up")
	}

	cfg.Input.Bindings = map[string]string{"k": "up", "j": "down"}
	bindings, err = cfg.DirBindings()
	if err != nil {
		t.Fatalf("DirBindings: %v", err)
	}
	if dir, ok := bindings.Lookup("k"); !ok || dir != input.DirUp {
		t.Errorf("Lookup(k) = %v, %v; want up, true", dir, ok)
	}
	if _, ok := bindings.Lookup("up"); ok {
		t.Error("custom bindings should replace the defaults, not extend them")
	}

	cfg.Input.Bindings = map[string]string{"k": "sideways"}
	if _, err := cfg.DirBindings(); err == nil {
		t.Error("unknown direction accepted")
	}
}
