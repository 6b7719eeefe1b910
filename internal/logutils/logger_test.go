package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "drill.log")

	logger, closer, err := New("info", file)
	assert.NilError(t, err)

	logger.Info().Str("deck", "questions.csv").Msg("deck loaded")
	logger.Debug().Msg("filtered out")
	closer()

	data, err := os.ReadFile(file)
	assert.NilError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Assert(t, is.Len(lines, 1))

	var entry map[string]any
	assert.NilError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, entry["level"], "info")
	assert.Equal(t, entry["message"], "deck loaded")
	assert.Equal(t, entry["deck"], "questions.csv")
	assert.Check(t, entry["time"] != nil)
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "drill.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		assert.NilError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"first"`))
	assert.Check(t, is.Contains(string(data), `"second"`))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	assert.ErrorContains(t, err, "parse log level")
	closer()
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	logger, closer, err := New("debug", "")
	assert.NilError(t, err)
	defer closer()

	logger.Info().Msg("nowhere")
}
