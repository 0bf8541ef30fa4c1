// Package inductance computes the per-unit-length inductance matrix of a
// flat three-phase overhead line using Maxwell's coefficients and the
// method of images, recording every intermediate quantity as a derivation
// step.
package inductance

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	// GMRFactor is e^(-1/4), the geometric mean radius factor for a
	// solid round conductor.
	GMRFactor = 0.7788

	// Scale converts a Maxwell coefficient to inductance in mH/km:
	// mu0/(2*pi) * 1000, with unity relative permeability.
	Scale = 0.2
)

// Step is one labeled entry of the derivation trace. It is display data
// only; downstream logic never reads it.
type Step struct {
	Label   string `json:"label"`
	Formula string `json:"formula"`
	Value   string `json:"value"`
	Note    string `json:"note,omitempty"`
}

// Matrix wraps a gonum symmetric matrix so results marshal as plain rows.
type Matrix struct {
	*mat.SymDense
}

// Rows returns the matrix entries as row slices.
func (m Matrix) Rows() [][]float64 {
	n := m.SymmetricDim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// MarshalJSON encodes the matrix as a JSON array of rows.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

// Result is the complete solver output, freshly constructed per call.
type Result struct {
	EquivalentRadius float64 `json:"equivalent_radius_m"`
	Maxwell          Matrix  `json:"maxwell"`
	Untransposed     Matrix  `json:"inductance_untransposed_mh_km"`
	Transposed       Matrix  `json:"inductance_transposed_mh_km"`
	SelfInductance   float64 `json:"self_inductance_mh_km"`
	MutualAdjacent   float64 `json:"mutual_adjacent_mh_km"`
	MutualOuter      float64 `json:"mutual_outer_mh_km"`
	MutualAverage    float64 `json:"mutual_average_mh_km"`
	Steps            []Step  `json:"steps"`
}

func (r *Result) addStep(label, formula, value, note string) {
	r.Steps = append(r.Steps, Step{Label: label, Formula: formula, Value: value, Note: note})
}

// DomainError reports a parameter combination outside the valid range of
// the image-conductor model: a logarithm argument that is not a finite
// ratio greater than one, or a degenerate equivalent radius.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("inductance: %s = %g is outside the model's physical range", e.Quantity, e.Value)
}
