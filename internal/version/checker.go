// Package version reports the build version and looks up newer releases.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is overridden at build time with -ldflags "-X .../version.Version=x.y.z"
var Version = "0.1.0"

const (
	releasesURL  = "https://api.github.com/repos/studiowebux/hcp/releases/latest"
	checkTimeout = 5 * time.Second
)

// Release is the subset of the GitHub release payload hcp shows
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Version returns the tag without its leading "v"
func (r Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Checker queries the release feed
type Checker struct {
	client *http.Client
	url    string
}

// NewChecker creates a checker for the hcp release feed
func NewChecker() *Checker {
	return &Checker{
		client: &http.Client{Timeout: checkTimeout},
		url:    releasesURL,
	}
}

// Check fetches the latest release and reports whether it is newer than current
func (c *Checker) Check(ctx context.Context, current string) (Release, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Release{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "hcp/"+current)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Release{}, false, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, false, fmt.Errorf("failed to decode response: %w", err)
	}

	latest := release.Version()
	return release, latest != "" && IsNewer(latest, strings.TrimPrefix(current, "v")), nil
}

// IsNewer compares dotted numeric versions. Pre-release and build suffixes
// ("-dev", "+build1") are ignored, so "0.2.0-dev" equals "0.2.0".
func IsNewer(latest, current string) bool {
	l, c := parseVersion(latest), parseVersion(current)
	for i := 0; i < max(len(l), len(c)); i++ {
		lp, cp := part(l, i), part(c, i)
		if lp != cp {
			return lp > cp
		}
	}
	return false
}

func part(parts []int, i int) int {
	if i < len(parts) {
		return parts[i]
	}
	return 0
}

// parseVersion splits "1.2.3-rc1" into [1 2 3]; non-numeric parts are skipped
func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	var result []int
	for _, p := range strings.Split(version, ".") {
		if num, err := strconv.Atoi(p); err == nil {
			result = append(result, num)
		}
	}
	return result
}
