// Package file loads Docfolio configuration from a TOML file with
// environment-variable overrides. The environment names match the
// original deployment surface (GSUITE_FOLDER_URL, REFRESH_INTERVAL,
// SERVICE_ACCOUNT_FILE, PAGE_TITLE, PAGE_HEADER) so existing
// manifests keep working.
package file

import (
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/docfolio/docfolio/internal/logger"
)

// Source type identifiers.
const (
	SourceDrive    = "drive"
	SourceManifest = "manifest"
)

// DefaultRefreshInterval is 300 seconds, matching the original
// deployment default.
const DefaultRefreshInterval = 300

// Config holds all runtime configuration, consumed by the core as
// plain values.
type Config struct {
	// Source selects the document source: "drive" or "manifest".
	// When empty it is inferred: drive if FolderURL is set,
	// manifest otherwise.
	Source string `toml:"source"`

	// FolderURL is the Drive folder sharing URL or bare folder ID.
	FolderURL string `toml:"folder_url"`

	// CredentialsFile is the service-account JSON path.
	CredentialsFile string `toml:"credentials_file"`

	// ManifestPath is the declarative JSON manifest path.
	ManifestPath string `toml:"manifest_path"`

	// RefreshIntervalSeconds is the registry rebuild interval.
	RefreshIntervalSeconds int `toml:"refresh_interval"`

	// ListenAddr is the HTTP bind address.
	ListenAddr string `toml:"listen_addr"`

	// BaseURL is the externally visible site root, used to build
	// the absolute URLs encoded into QR codes.
	BaseURL string `toml:"base_url"`

	// HomeLink is an optional external "home" destination shown in
	// the page header.
	HomeLink string `toml:"home_link"`

	// PageTitle and PageHeader control the presentation chrome.
	PageTitle  string `toml:"page_title"`
	PageHeader string `toml:"page_header"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CredentialsFile:        "/var/secrets/google/service_account.json",
		ManifestPath:           "docs.json",
		RefreshIntervalSeconds: DefaultRefreshInterval,
		ListenAddr:             ":8080",
		BaseURL:                "http://localhost:8080",
		PageTitle:              "docfolio",
		PageHeader:             "Published Documents",
	}
}

// Load reads the TOML file at path, falling back to defaults when
// the file is absent, then applies environment overrides. A missing
// config file is normal for env-only deployments; malformed TOML is
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			logger.Debug("config: %s not found, using defaults", path)
		case err != nil:
			return cfg, err
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.FolderURL, "GSUITE_FOLDER_URL")
	setString(&c.CredentialsFile, "SERVICE_ACCOUNT_FILE")
	setString(&c.PageTitle, "PAGE_TITLE")
	setString(&c.PageHeader, "PAGE_HEADER")
	setString(&c.Source, "DOCFOLIO_SOURCE")
	setString(&c.ManifestPath, "DOCFOLIO_MANIFEST")
	setString(&c.ListenAddr, "DOCFOLIO_LISTEN")
	setString(&c.BaseURL, "DOCFOLIO_BASE_URL")
	setString(&c.HomeLink, "DOCFOLIO_HOME_LINK")

	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RefreshIntervalSeconds = n
		} else {
			logger.Warn("config: ignoring invalid REFRESH_INTERVAL %q", v)
		}
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// RefreshInterval returns the rebuild interval as a duration.
func (c Config) RefreshInterval() time.Duration {
	secs := c.RefreshIntervalSeconds
	if secs <= 0 {
		secs = DefaultRefreshInterval
	}
	return time.Duration(secs) * time.Second
}

// SourceType returns the configured source, inferring it from the
// folder URL when unset.
func (c Config) SourceType() string {
	if c.Source != "" {
		return c.Source
	}
	if c.FolderURL != "" {
		return SourceDrive
	}
	return SourceManifest
}
