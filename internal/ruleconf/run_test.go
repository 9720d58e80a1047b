package ruleconf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigFromFile(t *testing.T) {
	rc, err := LoadRunConfig(NewViper(), "testdata/run.yaml")
	require.NoError(t, err)
	assert.Equal(t, "tower", rc.Preset)
	assert.Equal(t, int64(11), rc.Seed)
	assert.Equal(t, 2, rc.Workers)
	assert.Equal(t, "debug", rc.LogLevel)
	assert.Equal(t, "text", rc.LogFormat)
	assert.Equal(t, map[string]string{"floors": "5"}, rc.Set)
}

func TestLoadRunConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("VOXCA_WORKERS", "6")
	t.Setenv("VOXCA_LOG_FORMAT", "json")
	rc, err := LoadRunConfig(NewViper(), "testdata/run.yaml")
	require.NoError(t, err)
	assert.Equal(t, 6, rc.Workers)
	assert.Equal(t, "json", rc.LogFormat)
}

func TestLoadRunConfigValidation(t *testing.T) {
	v := NewViper()
	_, err := LoadRunConfig(v, "")
	assert.Error(t, err, "neither program nor preset")

	v = NewViper()
	v.Set("program", "a.yaml")
	v.Set("preset", "tower")
	_, err = LoadRunConfig(v, "")
	assert.Error(t, err)

	v = NewViper()
	v.Set("program", "a.yaml")
	v.Set("workers", 0)
	rc, err := LoadRunConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, 1, rc.Workers)

	_, err = LoadRunConfig(NewViper(), "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRunConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := RunConfig{LogLevel: "warn", LogFormat: "json"}.Logger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = RunConfig{LogLevel: "loud"}.Logger(&buf)
	assert.Error(t, err)
	_, err = RunConfig{LogLevel: "info", LogFormat: "xml"}.Logger(&buf)
	assert.Error(t, err)
}
