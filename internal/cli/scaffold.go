package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

const (
	starterSchemaName = "env.schema.json"
	exampleEnvName    = ".env.example"
)

// starterSchema is a realistic web-service contract that shows off each
// property type and the most common constraints.
const starterSchema = `{
  "type": "object",
  "properties": {
    "NODE_ENV": {
      "type": "string",
      "description": "Deployment mode the application runs in.",
      "enum": ["development", "production", "test"],
      "default": "development"
    },
    "PORT": {
      "type": "integer",
      "description": "TCP port the service listens on.",
      "minimum": 1,
      "maximum": 65535,
      "default": 3000
    },
    "DATABASE_URL": {
      "type": "string",
      "description": "Connection string for the primary database.",
      "format": "uri"
    },
    "API_KEY": {
      "type": "string",
      "description": "Secret used to authenticate outbound API calls.",
      "minLength": 10,
      "sensitive": true
    },
    "DEBUG": {
      "type": "boolean",
      "description": "Enables verbose logging.",
      "default": false
    }
  },
  "required": ["DATABASE_URL", "API_KEY"]
}
`

// RunInit scaffolds a starter schema and a matching .env.example in dir.
// Existing files are preserved unless force is set.
func RunInit(dir string, force bool) error {
	schemaPath := filepath.Join(dir, starterSchemaName)
	examplePath := filepath.Join(dir, exampleEnvName)

	if !force {
		for _, path := range []string{schemaPath, examplePath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	if err := os.WriteFile(schemaPath, []byte(starterSchema), 0644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	s, err := schema.Parse([]byte(starterSchema))
	if err != nil {
		return fmt.Errorf("parse starter schema: %w", err)
	}
	if err := os.WriteFile(examplePath, []byte(ExampleEnv(s, starterSchemaName)), 0644); err != nil {
		return fmt.Errorf("write env example: %w", err)
	}

	printSystemMessage("Created '%s' and '%s'.", schemaPath, examplePath)
	return nil
}

// ExampleEnv renders a .env template for a schema: one entry per property in
// declaration order, defaults prefilled, required variables flagged. Values
// of sensitive properties are never prefilled.
func ExampleEnv(s *schema.Schema, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated from %s. Fill in the blanks before deploying.\n", source)

	for _, name := range s.Names() {
		prop, ok := s.Property(name)
		if !ok {
			continue
		}
		b.WriteString("\n")
		if prop.Description != "" {
			fmt.Fprintf(&b, "# %s\n", prop.Description)
		}
		if s.IsRequired(name) {
			b.WriteString("# required\n")
		}
		value := ""
		if prop.HasDefault() && !prop.Sensitive {
			value = fmt.Sprint(prop.Default)
		}
		fmt.Fprintf(&b, "%s=%s\n", name, value)
	}
	return b.String()
}
