// Package release checks GitHub for a newer published version.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Owner and Repo identify where releases of this tool are published.
const (
	Owner = "kostyay"
	Repo  = "ipdisplay"
)

const checkTimeout = 5 * time.Second

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// CheckLatest queries the GitHub releases API and returns the latest tag
// when it is newer than currentVersion, empty string when current.
func CheckLatest(ctx context.Context, owner, repo, currentVersion string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("release query failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release response: %w", err)
	}
	if release.TagName == "" {
		return "", nil
	}

	if isNewer(release.TagName, currentVersion) {
		return release.TagName, nil
	}
	return "", nil
}

// isNewer compares two semver-ish versions numerically, component by
// component, ignoring a leading 'v'. Dev or empty builds always count as
// older than any release.
func isNewer(a, b string) bool {
	b = strings.TrimPrefix(b, "v")
	if b == "" || b == "dev" {
		return true
	}
	a = strings.TrimPrefix(a, "v")

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := component(as, i), component(bs, i)
		if av != bv {
			return av > bv
		}
	}
	return false
}

func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
