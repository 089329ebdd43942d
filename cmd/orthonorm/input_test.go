package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBasis(t *testing.T) {
	rows, err := loadBasis("testdata/basis.yaml")
	require.NoError(t, err)
	assert.Equal(t, demoRows(), rows)
}

func TestLoadBasisMissingFile(t *testing.T) {
	_, err := loadBasis("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestOrthonormalizeRows(t *testing.T) {
	want := [][]float64{
		{0.5, 0.5, 0.5, 0.5},
		{-0.5, 0.5, -0.5, 0.5},
		{-0.5, -0.5, 0.5, 0.5},
		{0.5, -0.5, -0.5, 0.5},
	}

	pure, err := orthonormalizeRows(demoRows(), false)
	require.NoError(t, err)
	assert.Equal(t, want, pure)

	inPlace, err := orthonormalizeRows(demoRows(), true)
	require.NoError(t, err)
	assert.Equal(t, want, inPlace)
}

func TestOrthonormalizeRowsErrors(t *testing.T) {
	_, err := orthonormalizeRows([][]float64{{1, 0}, {1, 0, 0}}, false)
	assert.ErrorContains(t, err, "components")

	_, err = orthonormalizeRows([][]float64{{1, 0, 0, 0, 0}}, false)
	assert.ErrorContains(t, err, "unsupported dimension")

	out, err := orthonormalizeRows(nil, false)
	require.NoError(t, err)
	assert.Nil(t, out)
}
