package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcphub/internal/errors"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want Ordering
	}{
		{"1.0.1", "1.0.1", Equal},
		{"1.2.0", "1.1.9", Greater},
		{"1.1.9", "1.2.0", Less},
		{"1.0", "1.0.0", Equal},
		{"1.0.0", "1.0", Equal},
		{"1.0.1", "1.0", Greater},
		{"2", "1.99.99", Greater},
		{"1.10.0", "1.9.0", Greater},
		{"v1.2.3", "1.2.3", Equal},
		{"0.0.0", "0", Equal},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_Malformed(t *testing.T) {
	tests := []string{"", "v", "1..0", "1.0.0-beta", "a.b.c", "1.-1", "1.+2", "1.0.", "1.-0.0", "-0", "+1.0"}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Compare(in, "1.0.0")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))

			_, err = Compare("1.0.0", in)
			assert.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(" v1.20.3 ")
	require.NoError(t, err)
	assert.Equal(t, Version{1, 20, 3}, v)
	assert.Equal(t, "1.20.3", v.String())
}

func TestParse_RejectsSignedComponents(t *testing.T) {
	tests := []struct {
		in   string
		want Version
		ok   bool
	}{
		{"1.0.0", Version{1, 0, 0}, true},
		{"01.002", Version{1, 2}, true},
		{"1.-0.0", nil, false},
		{"1.+0.0", nil, false},
		{"-1", nil, false},
		{"1. 0", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformed))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
}
