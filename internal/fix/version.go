package fix

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a Django release as a (major, minor) pair, ordered
// lexicographically: (3,0) < (3,2) < (4,0).
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtMost reports whether v <= o.
func (v Version) AtMost(o Version) bool {
	return v.Major < o.Major || (v.Major == o.Major && v.Minor <= o.Minor)
}

// KnownVersions is the ordered set of supported target versions.
var KnownVersions = []Version{
	{1, 7}, {1, 8}, {1, 9}, {1, 10}, {1, 11},
	{2, 0}, {2, 1}, {2, 2},
	{3, 0}, {3, 1}, {3, 2},
	{4, 0}, {4, 1}, {4, 2},
	{5, 0}, {5, 1},
}

// KnownVersionStrings returns the supported versions in option order.
func KnownVersionStrings() []string {
	out := make([]string, len(KnownVersions))
	for i, v := range KnownVersions {
		out[i] = v.String()
	}
	return out
}

// ParseVersion parses "major.minor" and rejects versions outside the
// supported set.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if ok {
		maj, errMaj := strconv.Atoi(major)
		min, errMin := strconv.Atoi(minor)
		if errMaj == nil && errMin == nil {
			v := Version{Major: maj, Minor: min}
			for _, known := range KnownVersions {
				if v == known {
					return v, nil
				}
			}
		}
	}
	return Version{}, fmt.Errorf("unknown target version: %q (choose from %s)",
		s, strings.Join(KnownVersionStrings(), ", "))
}
