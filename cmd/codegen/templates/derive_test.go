package templates

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "s0 Readable[T0], s1 Readable[T1]", sourceParams(2))
	assert.Equal(t, `"0": s0, "1": s1`, sourcesLiteral(2))
	assert.Equal(t, `Pick[T0](v, "$0")`, pickArgs(1))
	assert.Equal(t, "", plural(1))
	assert.Equal(t, "s", plural(2))
}

func TestDeriveGen(t *testing.T) {
	src := DeriveGen(3)

	formatted, err := format.Source([]byte(src))
	require.NoError(t, err)

	out := string(formatted)
	assert.Contains(t, out, "// Code generated by cmd/codegen. DO NOT EDIT.")
	assert.Contains(t, out, "package lazy")
	for _, name := range []string{"Derive1[", "Derive2[", "Derive3[", "Subscribe1[", "Subscribe3["} {
		assert.Contains(t, out, "func "+name)
	}
	assert.NotContains(t, out, "Derive4[")
	assert.Contains(t, out, `Sources{"0": s0, "1": s1, "2": s2}`)
	assert.Contains(t, out, "1 typed source. See Derive.")
}
