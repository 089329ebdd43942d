package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/orthonorm/basis"
	"github.com/viant/orthonorm/vector"
)

// basisFile is the on-disk YAML layout accepted by --input.
type basisFile struct {
	Basis [][]float64 `yaml:"basis"`
}

// loadBasis reads a basis from a YAML file of the form:
//
//	basis:
//	  - [1, 1, 1, 1]
//	  - [0, 1, 0, 1]
func loadBasis(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f basisFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("orthonorm: parse %s: %w", path, err)
	}
	if len(f.Basis) == 0 {
		return nil, fmt.Errorf("orthonorm: %s contains no basis vectors", path)
	}
	return f.Basis, nil
}

// orthonormalizeRows dispatches runtime-dimension rows onto the compile-time
// vector types the library supports. The library itself performs no runtime
// dimension negotiation; this shim only selects a type. When inPlace is set
// the mutating calling convention is used on a private copy, otherwise the
// pure one; the results are identical by construction.
func orthonormalizeRows(rows [][]float64, inPlace bool) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	dim := len(rows[0])
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("orthonorm: vector %d has %d components, want %d", i, len(row), dim)
		}
	}
	switch dim {
	case 2:
		return orthonormalizeAs[[2]float64](rows, inPlace), nil
	case 3:
		return orthonormalizeAs[[3]float64](rows, inPlace), nil
	case 4:
		return orthonormalizeAs[[4]float64](rows, inPlace), nil
	default:
		return nil, fmt.Errorf("orthonorm: unsupported dimension %d (supported: 2, 3, 4)", dim)
	}
}

func orthonormalizeAs[C vector.Components](rows [][]float64, inPlace bool) [][]float64 {
	vecs := vectorsFromRows[C](rows)
	if inPlace {
		basis.Orthonormalize(vecs)
	} else {
		vecs = basis.Orthonormalized(vecs)
	}
	return rowsFromVectors(vecs)
}

func vectorsFromRows[C vector.Components](rows [][]float64) []vector.Vector[C] {
	out := make([]vector.Vector[C], len(rows))
	for i, row := range rows {
		var c C
		for j := 0; j < len(c); j++ {
			c[j] = row[j]
		}
		out[i] = vector.New(c)
	}
	return out
}

func rowsFromVectors[C vector.Components](vecs []vector.Vector[C]) [][]float64 {
	out := make([][]float64, len(vecs))
	for i, v := range vecs {
		row := make([]float64, v.Dim())
		for j := range row {
			row[j] = v.At(j)
		}
		out[i] = row
	}
	return out
}
