package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var requirementRE = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*(.*)$`)

// Requirement is a dependency declaration read from package metadata.
// The core never mutates a Requirement; sanitizers return a modified copy.
type Requirement struct {
	Name PackageName
	// Raw is the requirement as it was written.
	Raw       string
	Extras    []string
	Specifier Specifier
	// Marker is the raw environment marker. Markers are not evaluated.
	Marker string
	// URL is set for direct references ("name @ url").
	URL string
}

// ParseRequirement parses the PEP 508 subset "name[extras] specifier ; marker"
// or "name[extras] @ url ; marker".
func ParseRequirement(s string) (Requirement, error) {
	body, marker := splitMarker(s)

	m := requirementRE.FindStringSubmatch(body)
	if m == nil {
		return Requirement{}, zerr.With(zerr.Wrap(ErrInvalidRequirement, "cannot parse requirement"), "requirement", s)
	}

	req := Requirement{
		Name:   Canonicalize(m[1]),
		Raw:    strings.TrimSpace(s),
		Marker: marker,
	}
	if m[2] != "" {
		for e := range strings.SplitSeq(m[2], ",") {
			if e = strings.TrimSpace(e); e != "" {
				req.Extras = append(req.Extras, e)
			}
		}
	}

	rest := strings.TrimSpace(m[3])
	if after, ok := strings.CutPrefix(rest, "@"); ok {
		req.URL = strings.TrimSpace(after)
		if req.URL == "" {
			return Requirement{}, zerr.With(zerr.Wrap(ErrInvalidRequirement, "empty direct reference"), "requirement", s)
		}
		return req, nil
	}

	spec, err := ParseSpecifier(rest)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(ErrInvalidRequirement, "cannot parse specifier"), "requirement", s)
		return Requirement{}, zerr.With(wrapped, "cause", err.Error())
	}
	req.Specifier = spec
	return req, nil
}

// MustParseRequirement is like ParseRequirement but panics on error.
func MustParseRequirement(s string) Requirement {
	r, err := ParseRequirement(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRequirements parses every entry in order.
func ParseRequirements(entries []string) ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		r, err := ParseRequirement(e)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}

// A URL requirement may itself contain ";", so its marker must be preceded by whitespace.
func splitMarker(s string) (body, marker string) {
	if strings.Contains(s, "@") {
		if i := strings.Index(s, " ;"); i >= 0 {
			return s[:i], strings.TrimSpace(s[i+2:])
		}
		return s, ""
	}
	if before, after, ok := strings.Cut(s, ";"); ok {
		return before, strings.TrimSpace(after)
	}
	return s, ""
}

// WithSpecifier returns a copy of the requirement with a different specifier.
func (r Requirement) WithSpecifier(spec Specifier) Requirement {
	r.Extras = append([]string(nil), r.Extras...)
	r.Specifier = spec
	return r
}

// String renders the requirement in PEP 508 form.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(string(r.Name))
	if len(r.Extras) > 0 {
		b.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	switch {
	case r.URL != "":
		b.WriteString(" @ " + r.URL)
	case !r.Specifier.IsEmpty():
		b.WriteString(r.Specifier.String())
	}
	if r.Marker != "" {
		b.WriteString("; " + r.Marker)
	}
	return b.String()
}
