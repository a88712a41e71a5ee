package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ReadsJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"port": 9090,
		"parser_url": "http://parser.local",
		"database_url": "postgres://localhost/resumes",
		"owner_id": "owner-1"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://parser.local", cfg.ParserURL)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "owner-1", cfg.OwnerID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ParserURL: "http://explicit.local"}
	defaults := Config{
		ParserURL:  "http://default.local",
		BillingURL: "http://billing.local",
		Port:       9000,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "http://explicit.local", merged.ParserURL, "explicit values win")
	assert.Equal(t, "http://billing.local", merged.BillingURL, "empty values take defaults")
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_FallbackPort(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestLoadEnv_ReadsVariables(t *testing.T) {
	t.Setenv("PARSER_URL", "http://parser.env")
	t.Setenv("PORT", "7070")

	cfg := LoadEnv()
	assert.Equal(t, "http://parser.env", cfg.ParserURL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadEnv_IgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := LoadEnv()
	assert.Zero(t, cfg.Port)
}
