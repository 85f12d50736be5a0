// Package version compares CLI and template versions using semver.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is accepted on either side.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsRelease reports whether v parses as semver. Development builds ("dev")
// do not.
func IsRelease(v string) bool {
	_, err := parse(v)
	return err == nil
}

// Satisfies reports whether current is at least minimum. An empty minimum is
// always satisfied.
func Satisfies(current, minimum string) (bool, error) {
	if strings.TrimSpace(minimum) == "" {
		return true, nil
	}
	cmp, err := Compare(current, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}
