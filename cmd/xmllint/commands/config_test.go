package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xmllint/internal/config"
)

func TestConfigShow_Formats(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".xmllint.yaml"),
		[]byte("xsds_path: schemas\nxmls_path: docs\nworkers: 2\n"), 0o600))

	decoders := map[string]func([]byte, any) error{
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
		"json": json.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			out, _, err := execute(t, "config", "show", "--format", format)
			require.NoError(t, err)

			var got config.Config
			require.NoError(t, decode([]byte(out), &got), "output:\n%s", out)
			assert.Equal(t, "schemas", got.XSDsPath)
			assert.Equal(t, "docs", got.XMLsPath)
			assert.Equal(t, 2, got.Workers)
		})
	}
}

func TestConfigShow_UnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "config", "show", "--format", "ini")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigGet(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".xmllint.yaml"), []byte("xsds_path: schemas\n"), 0o600))

	out, _, err := execute(t, "config", "get", "xsds_path")
	require.NoError(t, err)
	assert.Equal(t, "schemas", strings.TrimSpace(out))
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XMLLINT_XSDS_PATH", "schemas")

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, ".xmllint.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "xsds_path: schemas")

	_, _, err = execute(t, "config", "init")
	require.Error(t, err, "existing file needs --force")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}
