package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/internal/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want defaults", c)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeFile(t, `
[server]
addr = ":9000"

[render]
backend = "native"

[portal]
reclaim_empty_hosts = true

[export]
bucket = "gallery-bucket"
`)
	t.Setenv("PRIMITIVES_SERVER_ADDR", ":9100")
	t.Setenv("PRIMITIVES_LOG_LEVEL", "debug")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9100" {
		t.Errorf("env should override file: addr = %q", c.Server.Addr)
	}
	if c.Render.Backend != "native" || !c.Portal.ReclaimEmptyHosts || c.Export.Bucket != "gallery-bucket" {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.Portal.MaxPasses != 50 || c.Export.Prefix != DefaultPrefix {
		t.Errorf("defaults lost: %+v", c)
	}
	if lvl, _ := c.Log.SlogLevel(); lvl != slog.LevelDebug {
		t.Errorf("level = %v", lvl)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !stderrors.Is(err, errors.New(errors.CodeConfigRead)) {
		t.Errorf("err = %v, want C002", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "[server\naddr = "))
	if !stderrors.Is(err, errors.New(errors.CodeConfigRead)) {
		t.Errorf("err = %v, want C002", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"bad backend", func(c *Config) { c.Render.Backend = "ios" }, "render.backend"},
		{"narrow track", func(c *Config) { c.Render.TrackWidth = 1 }, "track_width"},
		{"no passes", func(c *Config) { c.Portal.MaxPasses = 0 }, "max_passes"},
		{"no export target", func(c *Config) { c.Export.Dir = "" }, "export"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != errors.CodeInvalidConfig {
				t.Fatalf("Validate = %v, want C001", err)
			}
			if !strings.Contains(e.Detail, tt.want) {
				t.Errorf("detail %q does not mention %q", e.Detail, tt.want)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	want := Default()
	want.Server.Addr = ":8088"
	want.Export.Bucket = "b"
	want.Export.PathStyle = true
	if err := Write(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, want)
	}
}
