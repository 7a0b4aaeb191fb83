package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "rules.yaml")

	yamlContent := `name: host-rules
rules:
  - name: text-contrast
    expr: contrast.textBackground >= 4.5
  - name: accent-contrast
    expr: contrast.accentBackground >= 3.0
    severity: warn
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	set, err := LoadRules(yamlPath)
	require.NoError(t, err)
	assert.NotNil(t, set)

	assert.Equal(t, "host-rules", set.Name)
	require.Len(t, set.Rules, 2)
	assert.Equal(t, "text-contrast", set.Rules[0].Name)
	assert.Equal(t, "contrast.textBackground >= 4.5", set.Rules[0].Expr)
	assert.Equal(t, Severity(""), set.Rules[0].Severity)
	assert.Equal(t, SeverityWarn, set.Rules[1].Severity)
}

func TestLoadRules_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	jsonPath := filepath.Join(tmpDir, "rules.json")

	jsonContent := `{
		"name": "host-rules",
		"rules": [
			{"name": "petal-count", "expr": "flower.petalCount >= 4", "severity": "error"},
			{"name": "stable", "expr": "stable"}
		]
	}`

	err := os.WriteFile(jsonPath, []byte(jsonContent), 0644)
	require.NoError(t, err)

	set, err := LoadRules(jsonPath)
	require.NoError(t, err)
	require.Len(t, set.Rules, 2)
	assert.Equal(t, "petal-count", set.Rules[0].Name)
	assert.Equal(t, SeverityError, set.Rules[0].Severity)
}

func TestLoadRules_YMLExtension(t *testing.T) {
	tmpDir := t.TempDir()
	ymlPath := filepath.Join(tmpDir, "rules.yml")

	ymlContent := `rules:
  - name: stable
    expr: stable
`

	err := os.WriteFile(ymlPath, []byte(ymlContent), 0644)
	require.NoError(t, err)

	set, err := LoadRules(ymlPath)
	require.NoError(t, err)
	require.Len(t, set.Rules, 1)
}

func TestLoadRules_FileNotFound(t *testing.T) {
	set, err := LoadRules("/nonexistent/path/to/rules.yaml")
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadRules_UnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "rules.txt")

	err := os.WriteFile(txtPath, []byte("some content"), 0644)
	require.NoError(t, err)

	set, err := LoadRules(txtPath)
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "unsupported rule format")
	assert.Contains(t, err.Error(), ".txt")
}

func TestLoadRules_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "malformed.yaml")

	malformedYAML := `rules:
  - name: broken
     expr: bad indentation
`

	err := os.WriteFile(yamlPath, []byte(malformedYAML), 0644)
	require.NoError(t, err)

	set, err := LoadRules(yamlPath)
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadRules_ValidationFailure(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "dupes.yaml")

	yamlContent := `rules:
  - name: stable
    expr: stable
  - name: stable
    expr: "!stable"
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	set, err := LoadRules(yamlPath)
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "duplicate rule name")
}

func TestLoadRules_EmptySet(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "empty.yaml")

	err := os.WriteFile(yamlPath, []byte("rules: []\n"), 0644)
	require.NoError(t, err)

	set, err := LoadRules(yamlPath)
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Len(t, set.Rules, 0)
}
