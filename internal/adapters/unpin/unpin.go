// Package unpin strips version pins from requirements before they are scheduled.
package unpin

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sanitizer implements ports.RequirementSanitizer.
//
// In filter mode exact pins and upper bounds (==, ===, <, <=, ~=) are removed
// while lower bounds and exclusions are kept. All mode drops the whole
// specifier. None mode returns requirements unchanged.
type Sanitizer struct {
	mode string
}

var _ ports.RequirementSanitizer = (*Sanitizer)(nil)

// New creates a Sanitizer for one of the domain.Unpin* modes.
func New(mode string) (*Sanitizer, error) {
	switch mode {
	case domain.UnpinFilter, domain.UnpinAll, domain.UnpinNone:
		return &Sanitizer{mode: mode}, nil
	default:
		return nil, zerr.With(zerr.New("unknown unpin mode"), "mode", mode)
	}
}

// Sanitize returns req with its pins removed according to the mode.
func (s *Sanitizer) Sanitize(req domain.Requirement) domain.Requirement {
	switch s.mode {
	case domain.UnpinNone:
		return req
	case domain.UnpinAll:
		return req.WithSpecifier(domain.Specifier{})
	default:
		return req.WithSpecifier(req.Specifier.Filter(keepClause))
	}
}

func keepClause(c domain.Clause) bool {
	switch c.Op {
	case ">=", ">", "!=":
		return true
	default:
		return false
	}
}
