package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.PackageName
	}{
		{"Flask", "flask"},
		{"zope.interface", "zope-interface"},
		{"Foo__Bar-.baz", "foo-bar-baz"},
		{" typing_extensions ", "typing-extensions"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Canonicalize(tt.raw), tt.raw)
	}
}

func TestNameVariants(t *testing.T) {
	dash, underscore := domain.NameVariants("typing-extensions")
	assert.Equal(t, "typing-extensions", dash)
	assert.Equal(t, "typing_extensions", underscore)
}

func TestCanonicalizeAll(t *testing.T) {
	got := domain.CanonicalizeAll([]string{"B", "a", "", "b", "A_", "a"})
	assert.Equal(t, []domain.PackageName{"b", "a", "a-"}, got)
}

func TestResolutionPrefs_Clone(t *testing.T) {
	base := domain.DefaultPrefs()
	c := base.Clone(domain.WithUpgrade(true), domain.WithForceReinstall(true))

	assert.Equal(t, domain.ResolutionPrefs{ResolveDeps: true}, base)
	assert.Equal(t, domain.ResolutionPrefs{Upgrade: true, ResolveDeps: true, ForceReinstall: true}, c)
	assert.False(t, base.Clone(domain.WithResolveDeps(false)).ResolveDeps)
}
