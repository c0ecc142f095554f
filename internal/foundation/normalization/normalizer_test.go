package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnum string

const (
	testAlpha testEnum = "alpha"
	testBeta  testEnum = "beta"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(testAlpha, testAlpha, testBeta)

	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "beta", testBeta},
		{"case insensitive", "BETA", testBeta},
		{"with spaces", "  beta  ", testBeta},
		{"empty", "", testAlpha},
		{"invalid input", "gamma", testAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Parse(t *testing.T) {
	n := NewNormalizer(testAlpha, testAlpha, testBeta)

	v, err := n.Parse(" Beta")
	require.NoError(t, err)
	assert.Equal(t, testBeta, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, testAlpha, v)

	_, err = n.Parse("gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[alpha beta]")
	assert.Equal(t, []string{"alpha", "beta"}, n.ValidKeys())
}
