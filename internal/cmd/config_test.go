package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "suppress-date", flagKey("SuppressDate", "-"))
	assert.Equal(t, "suppress_date", flagKey("SuppressDate", "_"))
	assert.Equal(t, "schema", flagKey("Schema", "-"))
	assert.Equal(t, "xml-root", flagKey("XMLRoot", "-"))
}

func TestRenderTemplateJSON(t *testing.T) {
	data, err := renderTemplate("annotate", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, false, got["suppress_date"])
	assert.Equal(t, false, got["merge_tags"])
	assert.Equal(t, "com.example.model", got["package"])
	assert.Equal(t, []any{}, got["schema"])
	assert.NotContains(t, got, "debounce")
}

func TestRenderTemplateYAML(t *testing.T) {
	data, err := renderTemplate("watch", "yaml")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Contains(t, got, "watch")
	assert.Equal(t, "200ms", got["watch"]["debounce"])
	assert.Equal(t, false, got["watch"]["skip-mapper"])
	assert.Contains(t, got["watch"], "suppress-date")
}

func TestRenderTemplateTOML(t *testing.T) {
	data, err := renderTemplate("annotate", "toml")
	require.NoError(t, err)

	tree, err := toml.LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "com.example.model", tree.Get("annotate.package"))
	assert.Equal(t, false, tree.Get("annotate.suppress-date"))
}

func TestRenderTemplateUnknownCommand(t *testing.T) {
	_, err := renderTemplate("server", "json")
	assert.Error(t, err)
}

func TestConfigInitRun(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "annotate.yaml")
	c := &ConfigInit{Command: "annotate", Format: "yml", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "annotate:")

	assert.Error(t, c.Run(), "existing file without --force")

	c.Force = true
	assert.NoError(t, c.Run())

	bad := &ConfigInit{Command: "annotate", Format: "ini", Output: dest, Force: true}
	assert.Error(t, bad.Run())
}
