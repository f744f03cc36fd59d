package domain

import (
	"regexp"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"go.trai.ch/zerr"
)

var clauseRE = regexp.MustCompile(`^(~=|===|==|!=|<=|>=|<|>)\s*([^\s|]+)$`)

// Clause is a single comparison in a version specifier, e.g. ">=1.0".
type Clause struct {
	Op      string
	Version string

	// check is unset for "===" clauses, which compare strings.
	check *pep440.Specifiers
}

// String renders the clause without spaces.
func (c Clause) String() string {
	return c.Op + c.Version
}

// Specifier is a conjunction of clauses. The zero value matches every version.
type Specifier struct {
	clauses []Clause
}

// ParseSpecifier parses a comma separated PEP 440 specifier such as ">=1.0,<2".
func ParseSpecifier(s string) (Specifier, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	var spec Specifier
	if strings.TrimSpace(s) == "" {
		return spec, nil
	}
	for part := range strings.SplitSeq(s, ",") {
		c, err := parseClause(strings.TrimSpace(part))
		if err != nil {
			return Specifier{}, zerr.With(err, "specifier", s)
		}
		spec.clauses = append(spec.clauses, c)
	}
	return spec, nil
}

func parseClause(s string) (Clause, error) {
	m := clauseRE.FindStringSubmatch(s)
	if m == nil {
		return Clause{}, zerr.With(zerr.Wrap(ErrInvalidSpecifier, "cannot parse clause"), "clause", s)
	}
	c := Clause{Op: m[1], Version: m[2]}
	if c.Op == "===" {
		return c, nil
	}
	// Pre-releases are not excluded wholesale; only the per-operator rules apply.
	check, err := pep440.NewSpecifiers(c.String())
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(ErrInvalidSpecifier, "cannot parse clause"), "clause", s)
		return Clause{}, zerr.With(wrapped, "cause", err.Error())
	}
	c.check = &check
	return c, nil
}

// MustParseSpecifier is like ParseSpecifier but panics on error.
func MustParseSpecifier(s string) Specifier {
	spec, err := ParseSpecifier(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// Clauses returns a copy of the specifier's clauses.
func (s Specifier) Clauses() []Clause {
	return append([]Clause(nil), s.clauses...)
}

// IsEmpty reports whether the specifier has no clauses.
func (s Specifier) IsEmpty() bool {
	return len(s.clauses) == 0
}

// String renders the specifier in canonical comma separated form.
func (s Specifier) String() string {
	parts := make([]string, len(s.clauses))
	for i, c := range s.clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// Filter returns a specifier holding only the clauses for which keep returns true.
func (s Specifier) Filter(keep func(Clause) bool) Specifier {
	var out Specifier
	for _, c := range s.clauses {
		if keep(c) {
			out.clauses = append(out.clauses, c)
		}
	}
	return out
}

// Contains reports whether v satisfies every clause. Pre-releases are accepted.
func (s Specifier) Contains(v Version) bool {
	for _, c := range s.clauses {
		if !c.matches(v) {
			return false
		}
	}
	return true
}

func (c Clause) matches(v Version) bool {
	if c.check == nil {
		return strings.EqualFold(v.String(), c.Version)
	}
	return c.check.Check(v.v)
}
