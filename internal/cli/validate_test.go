package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
)

const cliSchema = `{
  "type": "object",
  "properties": {
    "NODE_ENV": {
      "type": "string",
      "enum": ["development", "production", "test"],
      "default": "development"
    },
    "PORT": {"type": "integer", "minimum": 1, "maximum": 65535, "default": 3000},
    "API_KEY": {"type": "string", "minLength": 10, "sensitive": true}
  },
  "required": ["API_KEY"]
}`

func writeFixtures(t *testing.T, env string) (schemaPath, envPath string) {
	t.Helper()
	dir := t.TempDir()
	schemaPath = filepath.Join(dir, "env.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cliSchema), 0644))
	envPath = filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(env), 0644))
	return schemaPath, envPath
}

func TestRunValidateHumanReport(t *testing.T) {
	schemaPath, envPath := writeFixtures(t, "API_KEY=sk-0123456789\nPORT=8080\n")

	var buf bytes.Buffer
	err := RunValidate(RunOptions{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
		NoColor:      true,
		Out:          &buf,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "environment valid")
}

func TestRunValidateInvalidEnvironment(t *testing.T) {
	schemaPath, envPath := writeFixtures(t, "PORT=8080\n")

	var buf bytes.Buffer
	err := RunValidate(RunOptions{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
		NoColor:      true,
		Out:          &buf,
	})

	require.ErrorIs(t, err, ErrInvalidEnvironment)
	assert.Contains(t, buf.String(), `Required environment variable "API_KEY"`)
}

func TestRunValidateRedactsSensitiveValues(t *testing.T) {
	// Coercion failures embed the raw value in the message; for sensitive
	// properties the report must mask it.
	const secretSchema = `{
  "type": "object",
  "properties": {
    "SECRET_SEED": {"type": "integer", "sensitive": true}
  }
}`
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "env.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(secretSchema), 0644))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SECRET_SEED=hunter2\n"), 0644))

	var buf bytes.Buffer
	err := RunValidate(RunOptions{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
		NoColor:      true,
		Out:          &buf,
	})

	require.ErrorIs(t, err, ErrInvalidEnvironment)
	assert.NotContains(t, buf.String(), "hunter2", "sensitive raw values stay out of reports")
	assert.Contains(t, buf.String(), `Invalid value for "SECRET_SEED"`)
}

func TestRunValidateJSON(t *testing.T) {
	schemaPath, envPath := writeFixtures(t, "API_KEY=sk-0123456789\n")

	var buf bytes.Buffer
	err := RunValidate(RunOptions{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
		JSON:         true,
		Out:          &buf,
	})
	require.NoError(t, err)

	var result domain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Warnings, 2, "NODE_ENV and PORT defaults")
	assert.Equal(t, float64(3000), result.Values["PORT"], "JSON numbers decode as float64")
}

func TestRunValidateJSONInvalid(t *testing.T) {
	schemaPath, envPath := writeFixtures(t, "API_KEY=sk-0123456789\nPORT=abc\n")

	var buf bytes.Buffer
	err := RunValidate(RunOptions{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
		JSON:         true,
		Out:          &buf,
	})
	require.ErrorIs(t, err, ErrInvalidEnvironment)

	var result domain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"PORT"}, result.InvalidKeys)
}

func TestRunValidateSchemaError(t *testing.T) {
	err := RunValidate(RunOptions{
		SchemaPath:   filepath.Join(t.TempDir(), "missing.json"),
		NoProcessEnv: true,
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidEnvironment), "setup failures are not validation failures")
}

func TestExecuteRejectsWatchWithJSON(t *testing.T) {
	err := Execute(RunOptions{Watch: true, JSON: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch and --json")
}
