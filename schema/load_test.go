package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/remarkdoc/schema"
)

const ordersYAML = `tables:
  - name: orders
    remark: Customer orders
    columns:
      - name: status
        type: VARCHAR
        remarks: Order status code
      - name: internal_flag
        type: BIT
        remarks: ""
`

const ordersTOML = `[[tables]]
name = "orders"
remark = "Customer orders"

  [[tables.columns]]
  name = "status"
  type = "VARCHAR"
  remarks = "Order status code"

  [[tables.columns]]
  name = "internal_flag"
  type = "BIT"
  remarks = ""
`

const ordersJSON = `{
  "tables": [
    {
      "name": "orders",
      "remark": "Customer orders",
      "columns": [
        {"name": "status", "type": "VARCHAR", "remarks": "Order status code"},
        {"name": "internal_flag", "type": "BIT", "remarks": ""}
      ]
    }
  ]
}`

func ordersSchema() *schema.Schema {
	return &schema.Schema{Tables: []schema.IntrospectedTable{{
		Name:   "orders",
		Remark: "Customer orders",
		Columns: []schema.IntrospectedColumn{
			{Name: "status", Type: "VARCHAR", Remarks: "Order status code"},
			{Name: "internal_flag", Type: "BIT"},
		},
	}}}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "orders.yaml", content: ordersYAML},
		{name: "yml", file: "orders.yml", content: ordersYAML},
		{name: "toml", file: "orders.toml", content: ordersTOML},
		{name: "json", file: "orders.json", content: ordersJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, dir, tt.file, tt.content)
			s, err := schema.LoadFile(p)
			require.NoError(t, err)
			assert.Equal(t, ordersSchema(), s)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := schema.LoadFile(writeFile(t, dir, "orders.xml", "<tables/>"))
	assert.ErrorIs(t, err, schema.ErrUnsupportedFormat)

	_, err = schema.LoadFile(writeFile(t, dir, "noname.yaml", "tables:\n  - remark: x\n"))
	assert.ErrorIs(t, err, schema.ErrMissingName)

	_, err = schema.LoadFile(writeFile(t, dir, "nocol.yaml", "tables:\n  - name: t\n    columns:\n      - remarks: x\n"))
	assert.ErrorIs(t, err, schema.ErrMissingName)

	_, err = schema.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		format schema.Format
		data   string
	}{
		{name: "yaml", format: schema.FormatYAML, data: "tables:\n  - name: orders\n    columns:\n      - name: status\n        remakrs: typo\n"},
		{name: "toml", format: schema.FormatTOML, data: "[[tables]]\nname = \"orders\"\n\n  [[tables.columns]]\n  name = \"status\"\n  remakrs = \"typo\"\n"},
		{name: "json", format: schema.FormatJSON, data: `{"tables": [{"name": "orders", "columns": [{"name": "status", "remakrs": "typo"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Decode([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	s, err := schema.Decode(nil, schema.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Tables)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", ordersYAML)
	b := writeFile(t, dir, "nested/deep/b.toml", ordersTOML)
	writeFile(t, dir, "nested/readme.txt", "ignored")

	files, err := schema.Expand([]string{
		filepath.Join(dir, "**", "*.{yaml,toml}"),
		a,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	_, err = schema.Expand([]string{filepath.Join(dir, "**", "*.json")})
	assert.ErrorIs(t, err, schema.ErrNoSchemaFiles)
}

func TestLoadAllMergesTables(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", ordersYAML)
	writeFile(t, dir, "b.json", `{"tables":[{"name":"customers","columns":[{"name":"id"}]}]}`)

	s, files, err := schema.LoadAll([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	assert.Len(t, files, 2)
	require.Len(t, s.Tables, 2)
	assert.Equal(t, "orders", s.Tables[0].Name)
	assert.Equal(t, "customers", s.Tables[1].Name)
	assert.NotNil(t, s.Table("customers"))
	assert.Nil(t, s.Table("nope"))
}
