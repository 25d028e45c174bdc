package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "exports", c.Session.ExportDir)
	assert.Equal(t, 200, c.Soak.Sessions)
	assert.Equal(t, 400, c.Soak.Actions)
	assert.Equal(t, 8, c.Soak.Workers)
	assert.EqualValues(t, 1, c.Soak.Seed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starjack.hcl")
	src := `
log {
  level  = "debug"
  format = "json"
}

session {
  export_dir = "/tmp/starjack"
}

soak {
  sessions = 50
  workers  = 2
  seed     = 99
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "/tmp/starjack", c.Session.ExportDir)
	assert.Equal(t, 50, c.Soak.Sessions)
	assert.Equal(t, 400, c.Soak.Actions, "unset values fall back to defaults")
	assert.Equal(t, 2, c.Soak.Workers)
	assert.EqualValues(t, 99, c.Soak.Seed)
}

func TestParsePartial(t *testing.T) {
	c, err := Parse([]byte(`log { format = "logfmt" }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "logfmt", c.Log.Format)
	assert.Equal(t, "info", c.Log.Level)
	assert.NotNil(t, c.Session)
	assert.NotNil(t, c.Soak)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `log {`, "failed to parse"},
		{"unknown block", `server { port = 1 }`, "failed to decode"},
		{"wrong type", `soak { sessions = "many" }`, "failed to decode"},
		{"bad level", `log { level = "trace" }`, "invalid log level"},
		{"bad format", `log { format = "xml" }`, "invalid log format"},
		{"negative workers", `soak { workers = -1 }`, "workers must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err, "a directory is not a config file")
}
