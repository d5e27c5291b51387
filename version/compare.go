package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// semver holds the numeric core of a release tag. Missing minor or patch parts are zero.
type semver struct {
	core       [3]int
	prerelease string
}

func parse(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, v.prerelease, _ = strings.Cut(s, "-")
	s, _, _ = strings.Cut(s, "+")

	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return v, fmt.Errorf("invalid version: %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version: %q", s)
		}
		v.core[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
// A pre-release is older than the release it precedes.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av.core[:], bv.core[:]) {
		if c := cmp.Compare(pair.A, pair.B); c != 0 {
			return c, nil
		}
	}

	switch {
	case av.prerelease == bv.prerelease:
		return 0, nil
	case av.prerelease == "":
		return 1, nil
	case bv.prerelease == "":
		return -1, nil
	default:
		return strings.Compare(av.prerelease, bv.prerelease), nil
	}
}
