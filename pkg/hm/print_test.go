package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStyles(t *testing.T) {
	d := TypeVariable("d")
	e := TypeVariable("e")

	for _, tc := range []struct {
		ty        Type
		canonical string
		legacy    string
	}{
		{Int, "int", "int"},
		{NewFnType(a, a), "a -> a", "a -> a"},
		{
			NewFnTypes(b, a, b),
			"a -> b -> b",
			"a -> (b -> b)",
		},
		{
			NewFnType(NewFnType(a, b), NewFnType(a, b)),
			"(a -> b) -> a -> b",
			"(a -> b) -> (a -> b)",
		},
		{
			NewFnTypes(e, a, b, c, d),
			"a -> b -> c -> d -> e",
			"a -> (b -> (c -> d -> e))",
		},
	} {
		t.Run(tc.canonical, func(t *testing.T) {
			assert.Equal(t, tc.canonical, Canonical.Type(tc.ty))
			assert.Equal(t, tc.canonical, tc.ty.String())
			assert.Equal(t, tc.legacy, Legacy.Type(tc.ty))
		})
	}
}

func TestPrintScheme(t *testing.T) {
	sc := NewScheme([]TypeVariable{a, b}, NewFnTypes(a, a, b))
	assert.Equal(t, "forall a b. a -> b -> a", Canonical.Scheme(sc))
	assert.Equal(t, "forall a b. a -> (b -> a)", Legacy.Scheme(sc))
	assert.Equal(t, "int", Mono(Int).String())
}

func TestParsePrintStyle(t *testing.T) {
	style, err := ParsePrintStyle("legacy")
	require.NoError(t, err)
	assert.Equal(t, Legacy, style)

	style, err = ParsePrintStyle("")
	require.NoError(t, err)
	assert.Equal(t, Canonical, style)

	_, err = ParsePrintStyle("fancy")
	require.Error(t, err)
}
