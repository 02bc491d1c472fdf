package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: 127.0.0.1
  port: 8080
database:
  host: localhost
  port: 5432
  name: liftlog
  user: liftlog
  password: secret
`

// TestLoadValid verifies a complete config parses with defaults applied.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "liftlog" {
		t.Errorf("database.name = %q, want liftlog", cfg.Database.Name)
	}
	if cfg.Timers.DefaultRestSeconds != 60 {
		t.Errorf("timers.default_rest_seconds = %d, want default 60", cfg.Timers.DefaultRestSeconds)
	}
	if len(cfg.Timers.RestPresets) == 0 {
		t.Error("timers.rest_presets default missing")
	}
}

// TestLoadMissingFile verifies a missing config file is an error.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

// TestEnvOverrides verifies LIFTLOG_* environment variables win over file
// values.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIFTLOG_DB_HOST", "db.internal")
	t.Setenv("LIFTLOG_SERVER_PORT", "9999")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("database.host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
}

// TestValidation verifies each required field is enforced.
func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"missing port", func(s string) string { return strings.Replace(s, "port: 8080", "port: 0", 1) }, "server.port"},
		{"missing db host", func(s string) string { return strings.Replace(s, "host: localhost", "host: \"\"", 1) }, "database.host"},
		{"missing db name", func(s string) string { return strings.Replace(s, "name: liftlog", "name: \"\"", 1) }, "database.name"},
		{"missing db user", func(s string) string { return strings.Replace(s, "user: liftlog", "user: \"\"", 1) }, "database.user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validYAML)))
			if err == nil {
				t.Fatal("Load succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

// TestTailscaleValidation verifies the hostname requirement and that tsnet
// mode lifts the port requirement.
func TestTailscaleValidation(t *testing.T) {
	noHostname := validYAML + `
tailscale:
  enabled: true
`
	if _, err := Load(writeConfig(t, noHostname)); err == nil {
		t.Error("Load without tailscale.hostname succeeded")
	}

	tsnetOnly := strings.Replace(validYAML, "port: 8080", "port: 0", 1) + `
tailscale:
  enabled: true
  hostname: liftlog
`
	if _, err := Load(writeConfig(t, tsnetOnly)); err != nil {
		t.Errorf("Load with tsnet and no port failed: %v", err)
	}
}

// TestDSN verifies connection string assembly and the sslmode default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, Name: "n", User: "u", Password: "p"}
	want := "postgres://u:p@h:5432/n?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	if got := d.DSN(); !strings.HasSuffix(got, "sslmode=require") {
		t.Errorf("DSN = %q, want sslmode=require suffix", got)
	}
}
