// Package update checks for newer rolas releases.
//
// The release endpoint must answer like the GitHub "latest release" API
// ({"tag_name": "v1.2.3", "html_url": "..."}). It is chosen in this order:
// Checker.URL, the ROLAS_UPDATE_URL environment variable, DefaultReleaseURL.
// Forks and mirrors point ROLAS_UPDATE_URL (or `rolas version --check
// --release-url`) at their own repository.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pthm/rolas/internal/version"
)

const (
	// DefaultReleaseURL is the GitHub endpoint for the latest rolas release.
	DefaultReleaseURL = "https://api.github.com/repos/pthm/rolas/releases/latest"

	// ReleaseURLEnv overrides DefaultReleaseURL.
	ReleaseURLEnv = "ROLAS_UPDATE_URL"

	cacheTTL  = 24 * time.Hour
	cacheFile = "update-check.json"
)

// Info contains update check results.
type Info struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	ReleaseURL      string    `json:"release_url,omitempty"`
	Source          string    `json:"source"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a release endpoint, caching the answer for a day.
type Checker struct {
	// URL is the release endpoint. Empty means $ROLAS_UPDATE_URL, then
	// DefaultReleaseURL.
	URL string

	// CacheDir overrides the cache location. Empty means
	// $XDG_CACHE_HOME/rolas or ~/.cache/rolas.
	CacheDir string

	Client *http.Client
}

// CheckWithCache checks for updates with the default Checker.
func CheckWithCache(ctx context.Context) (*Info, error) {
	return (&Checker{}).Check(ctx)
}

// Check returns the cached result when it is fresh, otherwise fetches the
// latest release and refreshes the cache.
func (c *Checker) Check(ctx context.Context) (*Info, error) {
	url := c.releaseURL()
	info, err := c.loadCache()
	if err == nil && info.Source == url && time.Since(info.CheckedAt) < cacheTTL {
		info.CurrentVersion = version.Version
		info.UpdateAvailable = compareVersions(info.CurrentVersion, info.LatestVersion) < 0
		return info, nil
	}

	info, err = c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	_ = c.saveCache(info)
	return info, nil
}

func (c *Checker) releaseURL() string {
	if c.URL != "" {
		return c.URL
	}
	if url := os.Getenv(ReleaseURLEnv); url != "" {
		return url
	}
	return DefaultReleaseURL
}

func (c *Checker) fetch(ctx context.Context, url string) (*Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", version.UserAgent())

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release endpoint %s returned status %d", url, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return &Info{
		LatestVersion:   latest,
		CurrentVersion:  version.Version,
		ReleaseURL:      release.HTMLURL,
		Source:          url,
		CheckedAt:       time.Now(),
		UpdateAvailable: compareVersions(version.Version, latest) < 0,
	}, nil
}

func (c *Checker) cacheDir() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "rolas"), nil
}

func (c *Checker) loadCache() (*Info, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, cacheFile))
	if err != nil {
		return nil, err
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Checker) saveCache(info *Info) error {
	dir, err := c.cacheDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, cacheFile), data, 0o644)
}

// compareVersions compares two semver strings.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. "dev" sorts after every
// release; pre-release suffixes are ignored.
func compareVersions(a, b string) int {
	a = strings.TrimPrefix(a, "v")
	b = strings.TrimPrefix(b, "v")

	if a == "dev" {
		return 1
	}
	if b == "dev" {
		return -1
	}

	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	n := max(len(partsA), len(partsB))
	for i := 0; i < n; i++ {
		numA, numB := versionPart(partsA, i), versionPart(partsB, i)
		if numA < numB {
			return -1
		}
		if numA > numB {
			return 1
		}
	}
	return 0
}

func versionPart(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	base, _, _ := strings.Cut(parts[i], "-")
	n, _ := strconv.Atoi(base)
	return n
}
