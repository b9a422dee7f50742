package values

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionPattern restricts policy versions to plain numeric major.minor[.patch].
// Prerelease tags, build metadata, and "v" prefixes are not valid policy versions.
var versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// SemanticVersion is an immutable policy document version.
// A missing patch component is treated as 0, so "1.2" equals "1.2.0".
type SemanticVersion struct {
	value *semver.Version
}

// ParseVersion parses a dotted version string into a SemanticVersion.
func ParseVersion(s string) (SemanticVersion, error) {
	if !versionPattern.MatchString(s) {
		return SemanticVersion{}, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return SemanticVersion{value: v}, nil
}

// MustParseVersion parses a version string or panics (for tests only)
func MustParseVersion(s string) SemanticVersion {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// InitialVersion returns the starting version for a new policy (1.0.0).
func InitialVersion() SemanticVersion {
	return SemanticVersion{value: semver.New(1, 0, 0, "", "")}
}

// Compare returns -1, 0, or 1 if this version is less than, equal to,
// or greater than the other. Comparison is numeric, component-wise:
// major, then minor, then patch.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	return v.value.Compare(other.value)
}

// Equals checks if two versions are equal
func (v SemanticVersion) Equals(other SemanticVersion) bool {
	return v.Compare(other) == 0
}

// NextMinor returns a new version with minor incremented and patch reset.
func (v SemanticVersion) NextMinor() SemanticVersion {
	next := v.value.IncMinor()
	return SemanticVersion{value: &next}
}

// NextMajor returns a new version with major incremented and minor and patch reset.
func (v SemanticVersion) NextMajor() SemanticVersion {
	next := v.value.IncMajor()
	return SemanticVersion{value: &next}
}

// Major returns the major component
func (v SemanticVersion) Major() uint64 {
	return v.value.Major()
}

// Minor returns the minor component
func (v SemanticVersion) Minor() uint64 {
	return v.value.Minor()
}

// Patch returns the patch component
func (v SemanticVersion) Patch() uint64 {
	return v.value.Patch()
}

// IsZero returns true if this is the zero value (never parsed)
func (v SemanticVersion) IsZero() bool {
	return v.value == nil
}

// String returns the canonical major.minor.patch representation
func (v SemanticVersion) String() string {
	if v.value == nil {
		return ""
	}
	return v.value.String()
}

// MarshalJSON implements json.Marshaler
func (v SemanticVersion) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *SemanticVersion) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid version JSON")
	}
	s = s[1 : len(s)-1]

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
