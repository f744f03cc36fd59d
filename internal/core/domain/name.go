// Package domain contains the core domain models for resolving, building and installing source packages.
package domain

import (
	"regexp"
	"strings"
)

var separatorRun = regexp.MustCompile(`[-_.]+`)

// PackageName is the canonical identity of a package.
// Two raw spellings that differ only in case or in their use of "-", "_" and "."
// canonicalize to the same PackageName.
type PackageName string

// Canonicalize converts a raw package name to its canonical PEP 503 form.
func Canonicalize(raw string) PackageName {
	return PackageName(separatorRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "-"))
}

// String returns the canonical name.
func (n PackageName) String() string {
	return string(n)
}

// NameVariants returns the dash and underscore spellings of a canonical name.
// Install databases may record a distribution under either spelling.
func NameVariants(name PackageName) (dash, underscore string) {
	dash = string(name)
	underscore = strings.ReplaceAll(dash, "-", "_")
	return dash, underscore
}

// CanonicalizeAll canonicalizes raw names, dropping blanks and duplicates while keeping first-seen order.
func CanonicalizeAll(raw []string) []PackageName {
	seen := make(map[PackageName]bool, len(raw))
	res := make([]PackageName, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		n := Canonicalize(r)
		if seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}
