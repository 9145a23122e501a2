package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/infrastructure"
)

func TestParseFiles(t *testing.T) {
	fs := infrastructure.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("demo.json", []byte(`{
  "applicationName": "DemoApp",
  "frameworkType": "springboot",
  "databaseType": "postgresql",
  "jwtAuthEnabled": true
}`)))
	require.NoError(t, fs.WriteFile("demo.yaml", []byte(`applicationName: " DemoApp "
frameworkType: SPRINGBOOT
databaseType: POSTGRESQL
jwtAuthEnabled: true
`)))
	require.NoError(t, fs.WriteFile("demo.md", []byte("# Demo\n\nSome notes.\n\n```yaml\n"+
		"applicationName: DemoApp\nframeworkType: SPRINGBOOT\ndatabaseType: postgresql\njwtAuthEnabled: true\n```\n")))

	p := NewRequestParser(fs)
	for _, name := range []string{"demo.json", "demo.yaml", "demo.md"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := p.Parse(name)
			require.NoError(t, err)
			assert.Equal(t, "DemoApp", cfg.ApplicationName)
			assert.Equal(t, domain.FrameworkSpringBoot, cfg.Framework)
			assert.Equal(t, domain.DatabasePostgreSQL, cfg.Database)
			assert.True(t, cfg.JwtAuthEnabled)
			assert.False(t, cfg.BaseEntityEnabled)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewRequestParser(infrastructure.NewMemoryFileSystem()).Parse("nope.json")
	assert.Error(t, err)
}

func TestParseBytesMarkdownJSON(t *testing.T) {
	md := "Request:\n```json\n{\"applicationName\": \"Shop\", \"databaseType\": \"MYSQL\"}\n```\n"
	cfg, err := ParseBytes(FormatMarkdown, []byte(md))
	require.NoError(t, err)
	assert.Equal(t, "Shop", cfg.ApplicationName)
	assert.Equal(t, domain.DatabaseMySQL, cfg.Database)
}

func TestParseBytesRejects(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"unknown json field", FormatJSON, `{"applicationName": "Demo", "payments": true}`},
		{"unknown yaml field", FormatYAML, "applicationName: Demo\npayments: true\n"},
		{"bad json", FormatJSON, `{"applicationName": `},
		{"bad database", FormatJSON, `{"applicationName": "Demo", "databaseType": "MONGO"}`},
		{"markdown without block", FormatMarkdown, "# nothing here\n"},
		{"unknown format", Format("toml"), "x = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes(tt.format, []byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfiguration))
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.json":     FormatJSON,
		"a.YAML":     FormatYAML,
		"a.yml":      FormatYAML,
		"README.md":  FormatMarkdown,
		"x.markdown": FormatMarkdown,
	}
	for name, want := range tests {
		got, err := FormatFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatFor("request.txt")
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}
