package unpin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/unpin"
	"go.trai.ch/forge/internal/core/domain"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		mode string
		in   string
		want string
	}{
		{mode: domain.UnpinFilter, in: "requests==2.31.0", want: "requests"},
		{mode: domain.UnpinFilter, in: "numpy>=1.20,<2", want: "numpy>=1.20"},
		{mode: domain.UnpinFilter, in: "attrs~=22.1", want: "attrs"},
		{mode: domain.UnpinFilter, in: "six!=1.11,<=1.16", want: "six!=1.11"},
		{mode: domain.UnpinFilter, in: "pkg===1.0", want: "pkg"},
		{mode: domain.UnpinFilter, in: "pkg>1.0", want: "pkg>1.0"},
		{mode: domain.UnpinFilter, in: "pkg==1.*; python_version<'3.8'", want: "pkg; python_version<'3.8'"},
		{mode: domain.UnpinAll, in: "numpy>=1.20,<2", want: "numpy"},
		{mode: domain.UnpinAll, in: "pkg[extra]>=1", want: "pkg[extra]"},
		{mode: domain.UnpinNone, in: "numpy>=1.20,<2", want: "numpy>=1.20,<2"},
	}

	for _, tt := range tests {
		t.Run(tt.mode+" "+tt.in, func(t *testing.T) {
			s, err := unpin.New(tt.mode)
			require.NoError(t, err)

			got := s.Sanitize(domain.MustParseRequirement(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	s, err := unpin.New(domain.UnpinFilter)
	require.NoError(t, err)

	req := domain.MustParseRequirement("pkg[a]==1.0")
	_ = s.Sanitize(req)

	assert.Equal(t, "pkg[a]==1.0", req.String())
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := unpin.New("aggressive")
	require.Error(t, err)
}
