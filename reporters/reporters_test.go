package reporters_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sxwebdev/confmap"
	"github.com/sxwebdev/confmap/check"
	"github.com/sxwebdev/confmap/reporters"
)

func failingConfig(t *testing.T) (*confmap.Config, confmap.Template) {
	t.Helper()

	cfg, err := confmap.New(map[string]any{"port": "oops"}, nil)
	require.NoError(t, err)

	return cfg, confmap.Template{
		"port": check.Type[int](),
		"host": check.Type[string](),
	}
}

func TestWriter(t *testing.T) {
	cfg, tmpl := failingConfig(t)

	var buf bytes.Buffer
	ok := cfg.Validate(tmpl, confmap.WithReporter(reporters.Writer(&buf)))

	assert.False(t, ok)
	assert.Equal(t, ".host is missing.\n.port is invalid.\n", buf.String())
}

func TestCollector(t *testing.T) {
	cfg, tmpl := failingConfig(t)

	var col reporters.Collector
	ok := cfg.Validate(tmpl, confmap.WithReporter(col.Report))

	assert.False(t, ok)
	require.Len(t, col.Reports, 2)

	assert.True(t, col.Reports[0].Missing)
	assert.Equal(t, "host", col.Reports[0].Name)

	assert.False(t, col.Reports[1].Missing)
	assert.Equal(t, "port", col.Reports[1].Name)
	assert.Equal(t, "oops", col.Reports[1].Value)
}

func TestLogger(t *testing.T) {
	cfg, tmpl := failingConfig(t)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ok := cfg.Validate(tmpl, confmap.WithReporter(reporters.Logger(log)))

	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, `"message":".port is invalid."`)
	assert.Contains(t, out, `"name":"port"`)
	assert.Contains(t, out, `"missing":true`)
}
