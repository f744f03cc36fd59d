package domain

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"go.trai.ch/zerr"
)

// Version is a parsed PEP 440 version.
type Version struct {
	v pep440.Version
}

// ParseVersion parses a PEP 440 version string.
func ParseVersion(s string) (Version, error) {
	v, err := pep440.Parse(s)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(ErrInvalidVersion, "cannot parse version"), "version", s)
		return Version{}, zerr.With(wrapped, "cause", err.Error())
	}
	return Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as it was written.
func (v Version) String() string {
	return strings.TrimSpace(v.v.Original())
}

// Normalized returns the canonical PEP 440 form, e.g. "1.0rc1" for "1.0-C1".
func (v Version) Normalized() string {
	return v.v.String()
}

// IsPrerelease reports whether the version has a pre-release or a dev segment.
func (v Version) IsPrerelease() bool {
	return v.v.IsPreRelease()
}

// IsPostrelease reports whether the version has a post-release segment.
func (v Version) IsPostrelease() bool {
	return v.v.IsPostRelease()
}

// Compare orders two versions following PEP 440.
func (v Version) Compare(o Version) int {
	return v.v.Compare(o.v)
}
