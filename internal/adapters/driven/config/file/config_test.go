package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, 300, cfg.RefreshIntervalSeconds)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "docfolio", cfg.PageTitle)
}

func TestLoad_TOMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
source = "manifest"
manifest_path = "/etc/docfolio/docs.json"
refresh_interval = 60
page_header = "Team Docs"
home_link = "https://intranet.example.com"
`), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, SourceManifest, cfg.SourceType())
	assert.Equal(t, "/etc/docfolio/docs.json", cfg.ManifestPath)
	assert.Equal(t, time.Minute, cfg.RefreshInterval())
	assert.Equal(t, "Team Docs", cfg.PageHeader)
	assert.Equal(t, "https://intranet.example.com", cfg.HomeLink)
}

func TestLoad_MalformedTOMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`refresh_interval = [`), 0600))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`page_title = "from file"`), 0600))

	t.Setenv("PAGE_TITLE", "from env")
	t.Setenv("GSUITE_FOLDER_URL", "https://drive.google.com/drive/folders/F1")
	t.Setenv("REFRESH_INTERVAL", "120")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.PageTitle)
	assert.Equal(t, SourceDrive, cfg.SourceType())
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval())
}

func TestLoad_InvalidRefreshIntervalEnvIgnored(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 300, cfg.RefreshIntervalSeconds)
}

func TestSourceType_Inference(t *testing.T) {
	assert.Equal(t, SourceManifest, Config{}.SourceType())
	assert.Equal(t, SourceDrive, Config{FolderURL: "F1"}.SourceType())
	assert.Equal(t, SourceManifest, Config{Source: "manifest", FolderURL: "F1"}.SourceType())
}

func TestRefreshInterval_GuardsNonPositive(t *testing.T) {
	assert.Equal(t, 300*time.Second, Config{RefreshIntervalSeconds: 0}.RefreshInterval())
	assert.Equal(t, 300*time.Second, Config{RefreshIntervalSeconds: -5}.RefreshInterval())
}
