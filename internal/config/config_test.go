package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Error(d)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[share]
enabled = true
addr = "127.0.0.1:9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Log.Level = "debug"
	want.Share.Enabled = true
	want.Share.Addr = "127.0.0.1:9000"
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":      "[log\nlevel = 1",
		"unknown":     "[log]\ncolour = true\n",
		"extension":   "[document]\nextension = \"bez\"\n",
		"tolerance":   "[canvas]\nflatten_tolerance = 0.0\n",
		"curve width": "[canvas]\ncurve_width = 0.0\n",
		"bounds":      "[canvas]\nbounds_width = -1.0\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadAllowsHiddenBounds(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[canvas]\nbounds_width = 0.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.BoundsWidth != 0 {
		t.Errorf("got bounds_width %g, want 0", cfg.Canvas.BoundsWidth)
	}
}
