package docsmcp

import (
	"regexp"
	"slices"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// NormalizeVersion trims surrounding whitespace from a requested version.
// An empty result means no version was requested.
func NormalizeVersion(v string) string {
	return strings.TrimSpace(v)
}

// VersionOrDefault returns v, or Unversioned when v is empty.
func VersionOrDefault(v string) string {
	if v = NormalizeVersion(v); v == "" {
		return Unversioned
	}
	return v
}

// MatchVersion selects a version from available.
//
// With an empty target it returns the highest version, comparing the runs
// of digits embedded in each version numerically and breaking ties by the
// full string, so "10.0" ranks above "9.0".
//
// A target containing an "x" is a wildcard such as "5.x": the ".x" marker
// is removed and the remainder matched as a case-insensitive prefix. An
// exact member of available is returned unchanged. Any other target is
// matched as a literal prefix. Prefix matches return the lexicographically
// greatest candidate, not the numerically greatest.
func MatchVersion(available []string, target string) (string, bool) {
	if len(available) == 0 {
		return "", false
	}

	t := strings.TrimSpace(target)
	if t == "" {
		return latestVersion(available), true
	}

	desc := slices.Clone(available)
	slices.Sort(desc)
	slices.Reverse(desc)

	if strings.Contains(strings.ToLower(t), "x") {
		prefix := strings.TrimRight(strings.ReplaceAll(strings.ToLower(t), ".x", ""), ".")
		for _, v := range desc {
			if strings.HasPrefix(strings.ToLower(v), prefix) {
				return v, true
			}
		}
		return "", false
	}

	if slices.Contains(available, t) {
		return t, true
	}

	for _, v := range desc {
		if strings.HasPrefix(v, t) {
			return v, true
		}
	}
	return "", false
}

func latestVersion(available []string) string {
	best := available[0]
	for _, v := range available[1:] {
		if compareVersions(v, best) > 0 {
			best = v
		}
	}
	return best
}

// compareVersions orders versions by their embedded digit runs, compared
// as integers element by element, then by the full string.
func compareVersions(a, b string) int {
	na := digitRunRe.FindAllString(a, -1)
	nb := digitRunRe.FindAllString(b, -1)
	for i := 0; i < len(na) && i < len(nb); i++ {
		if c := compareDigits(na[i], nb[i]); c != 0 {
			return c
		}
	}
	if len(na) != len(nb) {
		if len(na) < len(nb) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// compareDigits compares two decimal strings of arbitrary length.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
