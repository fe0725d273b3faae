package runner

import (
	"regexp"
	"strconv"
)

// versionPattern tolerantly matches a semantic-version triple anywhere in a
// version line, with an optional leading "v".
var versionPattern = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)

// ParseMajor extracts the major version from a version line such as
// "v22.1.0" or "Node.js 18.17.1 (LTS)". The second result is false when the
// line holds no version triple; callers treat that as "found, version
// unknown" rather than as an error.
func ParseMajor(version string) (int, bool) {
	m := versionPattern.FindStringSubmatch(version)
	if m == nil {
		return 0, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return major, true
}
