// Package version tracks the running release and discovers newer ones.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/network"
	"github.com/shinigami-rest/shinigami/util"
	"github.com/shinigami-rest/shinigami/where"
)

// releasesURL points at the latest GitHub release of the project.
var releasesURL = "https://api.github.com/repos/shinigami-rest/shinigami/releases/latest"

var versionCacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       where.VersionCache(),
		Lifetime:   time.Hour * 24 * 2,
		FileSystem: &filesystem.GacheFs{},
	})
})

var client = network.New(network.Options{Timeout: 5 * time.Second})

// Latest returns the newest released version without the leading "v".
// The answer is cached for two days.
func Latest() (version string, err error) {
	cacher := versionCacher()
	// An unreadable cache is treated as expired.
	if ver, expired, cacheErr := cacher.Get(); cacheErr == nil && !expired && ver != "" {
		return ver, nil
	}

	req, err := http.NewRequest(http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = cacher.Set(version)
	return version, nil
}
