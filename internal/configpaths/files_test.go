package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		user   string
		format string
	}{
		{user: "custom.yaml", format: "yaml"},
		{user: "custom.yml", format: "yaml"},
		{user: "custom.toml", format: "toml"},
		{user: "custom.json", format: "json"},
		{user: "custom.conf", format: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tt.user)
			var got []string
			switch tt.format {
			case "yaml":
				got = y
			case "toml":
				got = tm
			default:
				got = j
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.user, got[0])
		})
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix config home layout")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	j, y, tm := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(home, "remarkdoc", "annotate.json"))
	assert.Contains(t, y, filepath.Join(home, "remarkdoc", "config.yml"))
	assert.Contains(t, tm, filepath.Join("/etc", "remarkdoc", "remarkdoc.toml"))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix config home layout")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	p, err := DefaultNamedConfigPath("annotate", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "remarkdoc", "annotate.yaml"), p)
	assert.Equal(t, "json", Ext(""))
}
