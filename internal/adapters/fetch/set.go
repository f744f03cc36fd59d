// Package fetch provides fetchers that materialize package source trees.
package fetch

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FetcherSet = (*Set)(nil)

// Set selects a fetcher by source kind.
// Kinds without a fetcher, including domain.SourceSystem, report false.
type Set struct {
	fetchers map[domain.SourceKind]ports.Fetcher
}

// NewSet creates a Set from kind to fetcher pairs.
func NewSet(fetchers map[domain.SourceKind]ports.Fetcher) *Set {
	m := make(map[domain.SourceKind]ports.Fetcher, len(fetchers))
	for k, f := range fetchers {
		if f != nil {
			m[k] = f
		}
	}
	return &Set{fetchers: m}
}

// For returns the fetcher registered for kind.
func (s *Set) For(kind domain.SourceKind) (ports.Fetcher, bool) {
	f, ok := s.fetchers[kind]
	return f, ok
}

func fetchError(err error, spec domain.FetchSpec, msg string) error {
	wrapped := zerr.With(zerr.Wrap(domain.ErrFetchFailed, msg), "kind", spec.Kind)
	wrapped = zerr.With(wrapped, "location", spec.Location)
	if err != nil {
		wrapped = zerr.With(wrapped, "cause", err.Error())
	}
	return wrapped
}
