package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

func TestSchemaMarkdown(t *testing.T) {
	s, err := schema.NewBuilder().
		String("NODE_ENV").Enum("development", "production").Default("development").Describe("Runtime mode.").
		Integer("PORT").Min(1).Max(65535).
		String("API_KEY").Required().MinLength(10).Sensitive().
		Build()
	require.NoError(t, err)

	md := SchemaMarkdown(s, "env.schema.json")

	assert.Contains(t, md, "# Environment Variables: env.schema.json")
	assert.Contains(t, md, "3 declared, 1 required.")
	assert.Contains(t, md, "| NODE_ENV | string |  | `development` |")
	assert.Contains(t, md, "| API_KEY | string | yes | - |")
	assert.Contains(t, md, "## NODE_ENV")
	assert.Contains(t, md, "Runtime mode.")
	assert.Contains(t, md, "one of: `development`, `production`")
	assert.Contains(t, md, "minimum: 1")
	assert.Contains(t, md, "maximum: 65535")
	assert.Contains(t, md, "minimum length: 10")
	assert.Contains(t, md, "sensitive: the value is redacted in reports")
}

func TestRenderDocsPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(cliSchema), 0644))

	out, err := RenderDocs(path, true)
	require.NoError(t, err)
	assert.Contains(t, out, "# Environment Variables: env.schema.json")
	assert.Contains(t, out, "## API_KEY")
}

func TestRenderDocsMissingSchema(t *testing.T) {
	_, err := RenderDocs(filepath.Join(t.TempDir(), "missing.json"), true)
	assert.Error(t, err)
}
