package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
)

func TestVersion_Ordering(t *testing.T) {
	ordered := []string{
		"1.0.dev1",
		"1.0a1",
		"1.0a2.dev1",
		"1.0a2",
		"1.0b1",
		"1.0rc1",
		"1.0",
		"1.0+local",
		"1.0.post1.dev1",
		"1.0.post1",
		"1.1",
		"1!0.5",
	}
	for i := 1; i < len(ordered); i++ {
		lo, hi := domain.MustParseVersion(ordered[i-1]), domain.MustParseVersion(ordered[i])
		assert.Negative(t, lo.Compare(hi), "%s < %s", lo, hi)
		assert.Positive(t, hi.Compare(lo), "%s > %s", hi, lo)
	}
}

func TestVersion_Equivalent(t *testing.T) {
	tests := []struct{ a, b string }{
		{"1.0", "1.0.0"},
		{"v1.0", "1.0"},
		{"1.0-1", "1.0.post1"},
		{"1.0c1", "1.0rc1"},
		{"1.0ALPHA1", "1.0a1"},
		{"1.0+Ubuntu.1", "1.0+ubuntu.1"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"=="+tt.b, func(t *testing.T) {
			assert.Zero(t, domain.MustParseVersion(tt.a).Compare(domain.MustParseVersion(tt.b)))
		})
	}
}

func TestVersion_LocalOrdering(t *testing.T) {
	assert.Negative(t, domain.MustParseVersion("1.0+abc").Compare(domain.MustParseVersion("1.0+5")))
	assert.Negative(t, domain.MustParseVersion("1.0+5").Compare(domain.MustParseVersion("1.0+10")))
}

func TestVersion_Flags(t *testing.T) {
	assert.True(t, domain.MustParseVersion("1.0a1").IsPrerelease())
	assert.True(t, domain.MustParseVersion("1.0.dev0").IsPrerelease())
	assert.False(t, domain.MustParseVersion("1.0").IsPrerelease())
	assert.True(t, domain.MustParseVersion("1.0.post1").IsPostrelease())
	assert.False(t, domain.MustParseVersion("1.0.post1").IsPrerelease())
	assert.Equal(t, "1.0", domain.MustParseVersion(" 1.0 ").String())
	assert.Equal(t, "1.0rc1.post2", domain.MustParseVersion("1.0-C1-2").Normalized())
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "1.0-foo", "1..0", "1.0+"} {
		t.Run(s, func(t *testing.T) {
			_, err := domain.ParseVersion(s)
			require.ErrorIs(t, err, domain.ErrInvalidVersion)
		})
	}
}
