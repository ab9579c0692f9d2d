package semver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedSARIFRange is the range of SARIF log versions the report understands.
const SupportedSARIFRange = ">= 2.1.0, < 3.0.0"

// IsSupportedSARIFVersion reports whether version falls inside SupportedSARIFRange.
// It returns an error when version is not a valid semantic version.
func IsSupportedSARIFVersion(version string) (bool, error) {
	return Satisfies(version, SupportedSARIFRange)
}

// Satisfies reports whether version matches the given constraint.
func Satisfies(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint: %s", constraint)
	}

	sv, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid semver: %s", version)
	}

	return c.Check(sv), nil
}
