package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	Logger.Infow("dropped", "k", 1)
}

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{Output: &buf}))
	Logger.Debug("hidden")
	Logger.Info("Parsing file a.cs")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO Parsing file a.cs")

	buf.Reset()
	require.NoError(t, Initialize(Options{Output: &buf, Verbose: true}))
	Logger.Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG shown")

	buf.Reset()
	require.NoError(t, Initialize(Options{Output: &buf, Quiet: true}))
	Logger.Info("hidden")
	Logger.Warn("kept")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "kept")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{Output: &buf, JSON: true}))
	t.Cleanup(func() { _ = Initialize(Options{Output: &bytes.Buffer{}}) })

	Logger.Infow("converted", "file", "a.cs", "cached", true)
	assert.True(t, JSONOutput)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "a.cs", entry["file"])
	assert.Equal(t, true, entry["cached"])
}
