package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	v, err := Parse("6.15.3")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 6, Minor: 15, Patch: 3}, v)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	v, err := Parse("  6 . 15 . 3  ")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 6, Minor: 15, Patch: 3}, v)
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0", "6.15.3", "6.15.0", "7.0.12", "412.3.99"} {
		v, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, v.String())
	}
}

func TestParse_FormatErrors(t *testing.T) {
	// All components parse as integers, but the count is wrong.
	for _, s := range []string{"6.15", "6.15.3.1", "6"} {
		_, err := Parse(s)
		require.Error(t, err, s)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, s)
		assert.Equal(t, s, formatErr.Input)
		assert.Contains(t, err.Error(), "exactly three dot-separated numbers")
	}
}

func TestParse_ComponentErrors(t *testing.T) {
	// A bad component fails before the count check, so "" and "6..3" report
	// the integer failure, not the component count.
	cases := []struct {
		input     string
		component string
	}{
		{"6.x.3", "x"},
		{"6..3", ""},
		{"", ""},
		{"6.15.", ""},
		{"6.-1.3", "-1"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		require.Error(t, err, tc.input)

		var compErr *ComponentError
		require.ErrorAs(t, err, &compErr, tc.input)
		assert.Equal(t, tc.input, compErr.Input)
		assert.Equal(t, tc.component, compErr.Component)
		assert.Contains(t, err.Error(), "failed to parse as integer")
	}
}

func TestCompare_Ordering(t *testing.T) {
	mustParse := func(s string) Version {
		v, err := Parse(s)
		require.NoError(t, err)
		return v
	}

	ordered := []Version{
		mustParse("6.14.3"),
		mustParse("6.14.4"),
		mustParse("6.15.0"),
		mustParse("7.0.0"),
	}

	for i, a := range ordered {
		for j, b := range ordered {
			switch {
			case i < j:
				assert.True(t, a.Less(b), "%s < %s", a, b)
				assert.Equal(t, -1, a.Compare(b))
			case i > j:
				assert.True(t, b.Less(a), "%s < %s", b, a)
				assert.Equal(t, 1, a.Compare(b))
			default:
				assert.Equal(t, 0, a.Compare(b))
				assert.False(t, a.Less(b))
			}
		}
	}
}

func TestCompare_Equal(t *testing.T) {
	a := Version{Major: 6, Minor: 14, Patch: 3}
	b := Version{Major: 6, Minor: 14, Patch: 3}

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, a, b)
}

func TestShortString(t *testing.T) {
	assert.Equal(t, "6.15", Version{Major: 6, Minor: 15, Patch: 4}.ShortString())
	assert.Equal(t, "6.15", Version{Major: 6, Minor: 15}.ShortString())
}
