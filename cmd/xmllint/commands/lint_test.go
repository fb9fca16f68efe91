package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/xmllint/internal/errors"
)

const cliSchema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           targetNamespace="urn:orders" xmlns="urn:orders" elementFormDefault="qualified">
  <xs:element name="order">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="id" type="xs:int"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestLint_Passes(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{
		"xsds/orders.xsd": cliSchema,
		"xmls/one.xml":    `<order xmlns="urn:orders"><id>1</id></order>`,
	})

	out, _, err := execute(t, "lint", "--xsds", "xsds", "--xmls", "xmls")
	require.NoError(t, err)
	assert.Contains(t, out, "--[B: XML Linter]--")
	assert.Contains(t, out, "~ Loaded xsds/orders.xsd (urn:orders)")
	assert.Contains(t, out, "~ Linted xmls/one.xml")
	assert.Contains(t, out, "Lint passed")
}

func TestLint_FailsWithReport(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{
		"xsds/orders.xsd": cliSchema,
		"xmls/bad.xml":    `<order xmlns="urn:orders"><id>not-a-number</id></order>`,
	})

	out, _, err := execute(t, "lint", "--root", root, "--xsds", "xsds", "--xmls", "xmls", "--report", "reports")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrLintFailed))
	assert.Equal(t, errors.ExitUser, errors.Classify(err).Code)
	assert.Contains(t, out, "Lint failed")
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(root, "reports", "XMLLint.*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestLint_JSONOutput(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{
		"xsds/orders.xsd": cliSchema,
		"xmls/bad.xml":    "<order xmlns=\"urn:orders\">\n<id>1</order>\n",
	})

	out, _, err := execute(t, "lint", "--xsds", "xsds", "--xmls", "xmls", "--json")
	require.Error(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records), "stdout must be pure JSON: %s", out)
	require.Len(t, records, 1)
	assert.Equal(t, "xmls/bad.xml", records[0]["path"])
}

func TestLint_QuietPrintsNothing(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{
		"xsds/orders.xsd": cliSchema,
		"xmls/one.xml":    `<order xmlns="urn:orders"><id>1</id></order>`,
	})

	out, _, err := execute(t, "lint", "-q", "--xsds", "xsds", "--xmls", "xmls")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLint_ConfigFileAndEnv(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{
		".xmllint.yaml":  "xsds_path: schemas\nxmls_path: wrong\n",
		"schemas/o.xsd":  cliSchema,
		"docs/valid.xml": `<order xmlns="urn:orders"><id>7</id></order>`,
	})
	t.Setenv("XMLLINT_XMLS_PATH", "docs")

	out, _, err := execute(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "~ Linted docs/valid.xml")
}

func TestLint_FatalInputs(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeTree(t, root, map[string]string{"xsds/orders.xsd": cliSchema, "xmls/.keep": ""})

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing xsds", []string{"lint", "--xmls", "xmls"}, errors.ErrMissingInput},
		{"xmls escapes root", []string{"lint", "--xsds", "xsds", "--xmls", "../elsewhere"}, errors.ErrInvalidPath},
		{"report escapes root", []string{"lint", "--xsds", "xsds", "--xmls", "xmls", "--report", "../out"}, errors.ErrInvalidPath},
		{"negative workers", []string{"lint", "--xsds", "xsds", "--xmls", "xmls", "--workers", "-2"}, errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.False(t, strings.Contains(out, "Loading XSD files"), "no schema loading before a fatal input error")
		})
	}
}
