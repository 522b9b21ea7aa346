package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, map[string]any, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	var result map[string]any
	if code != exitUsage {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result), stdout.String())
	}
	return code, result, stderr.String()
}

func TestRun(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		code, result, _ := runCLI(t, "--rules", "testdata/rules.yaml", "--data", "testdata/valid.json")
		assert.Equal(t, exitPassed, code)
		assert.Equal(t, map[string]any{
			"name":   false,
			"person": map[string]any{"age": false, "name": false},
		}, result)
	})

	t.Run("invalid document", func(t *testing.T) {
		code, result, _ := runCLI(t, "--rules", "testdata/rules.yaml", "--data", "testdata/invalid.yaml")
		assert.Equal(t, exitFailed, code)
		assert.Equal(t, map[string]any{
			"name":   "name min length value is 5",
			"person": map[string]any{"age": "custom", "name": false},
		}, result)
	})

	t.Run("single field", func(t *testing.T) {
		code, result, _ := runCLI(t, "--rules", "testdata/rules.yaml", "--data", "testdata/invalid.yaml", "--field", "person.name")
		assert.Equal(t, exitPassed, code)
		assert.Equal(t, map[string]any{"person": map[string]any{"name": false}}, result)
	})

	t.Run("localized messages", func(t *testing.T) {
		code, result, _ := runCLI(t,
			"--rules", "testdata/rules.yaml",
			"--data", "testdata/invalid.yaml",
			"--field", "name",
			"--lang", "vi",
			"--messages", "testdata/messages",
		)
		assert.Equal(t, exitFailed, code)
		assert.Equal(t, map[string]any{"name": "name cần ít nhất 5 ký tự."}, result)
	})

	t.Run("missing required flag", func(t *testing.T) {
		code, _, stderr := runCLI(t, "--rules", "testdata/rules.yaml")
		assert.Equal(t, exitUsage, code)
		assert.NotEmpty(t, stderr)
	})

	t.Run("missing rules file", func(t *testing.T) {
		code, _, _ := runCLI(t, "--rules", "testdata/nope.yaml", "--data", "testdata/valid.json")
		assert.Equal(t, exitUsage, code)
	})

	t.Run("missing data file", func(t *testing.T) {
		code, _, _ := runCLI(t, "--rules", "testdata/rules.yaml", "--data", "testdata/nope.json")
		assert.Equal(t, exitUsage, code)
	})

	t.Run("help", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"--help"}, &stdout, &stderr)
		assert.Equal(t, exitPassed, code)
		assert.Contains(t, stdout.String(), "rules")
	})
}

func TestReadData(t *testing.T) {
	data, err := readData("testdata/valid.json")
	require.NoError(t, err)
	assert.Equal(t, "abcde", data["name"])
	assert.Equal(t, map[string]any{"age": "20", "name": "abcde"}, data["person"])

	_, err = readData("testdata/nope.json")
	assert.ErrorIs(t, err, errReadingData)
}
