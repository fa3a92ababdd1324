package survey

import (
	"strings"

	"golang.org/x/mod/semver"
)

const baselineVersion = "0.0.0"

// compareTags orders two tag values by the part before the first dash, so
// "10.4-3.6.8" compares as 10.4. Tags that are not versions sort lowest.
func compareTags(a, b string) int {
	return semver.Compare(canonicalTag(a), canonicalTag(b))
}

func canonicalTag(tag string) string {
	prefix, _, _ := strings.Cut(tag, "-")
	return "v" + strings.TrimPrefix(prefix, "v")
}

// largestTag returns the greatest value above the 0.0.0 baseline.
func largestTag(values []string) (string, bool) {
	best := baselineVersion
	found := false
	for _, v := range values {
		if compareTags(v, best) > 0 {
			best = v
			found = true
		}
	}
	return best, found
}
