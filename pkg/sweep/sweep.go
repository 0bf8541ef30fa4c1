// Package sweep evaluates the inductance solver across a range of one line
// parameter, producing series suitable for tables and charts.
package sweep

import (
	"fmt"
	"math"

	"github.com/Ranjankaf081/inductance/pkg/inductance"
	"github.com/Ranjankaf081/inductance/pkg/spec"
)

// Param identifies which line parameter a sweep varies.
type Param string

const (
	ParamHeight        Param = "height"
	ParamSeparation    Param = "separation"
	ParamBundleSpacing Param = "bundle_spacing"
	ParamSubconductors Param = "subconductors"
)

// Unit returns the display unit of the swept parameter.
func (p Param) Unit() string {
	switch p {
	case ParamBundleSpacing:
		return "cm"
	case ParamSubconductors:
		return "count"
	}
	return "m"
}

// Point is one sample of a sweep.
type Point struct {
	Value          float64 `json:"value"`
	SelfInductance float64 `json:"self_inductance_mh_km"`
	MutualAverage  float64 `json:"mutual_average_mh_km"`
}

// Series is the full result of a sweep.
type Series struct {
	Param  Param   `json:"param"`
	Unit   string  `json:"unit"`
	Points []Point `json:"points"`
}

// Run sweeps one parameter from lo to hi over n evenly spaced samples,
// solving the line at each sample with all other parameters held fixed.
// Any sample outside the solver's physical range fails the whole sweep.
func Run(base spec.LineParameters, param Param, lo, hi float64, n int) (*Series, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 points, got %d", n)
	}
	if hi <= lo {
		return nil, fmt.Errorf("sweep: range %g..%g is empty", lo, hi)
	}

	series := &Series{Param: param, Unit: param.Unit(), Points: make([]Point, 0, n)}
	step := (hi - lo) / float64(n-1)

	for i := 0; i < n; i++ {
		v := lo + float64(i)*step
		params, err := apply(base, param, v)
		if err != nil {
			return nil, err
		}
		res, err := inductance.Solve(params)
		if err != nil {
			return nil, fmt.Errorf("sweep: %s = %g: %w", param, v, err)
		}
		series.Points = append(series.Points, Point{
			Value:          v,
			SelfInductance: res.SelfInductance,
			MutualAverage:  res.MutualAverage,
		})
	}
	return series, nil
}

func apply(base spec.LineParameters, param Param, v float64) (spec.LineParameters, error) {
	switch param {
	case ParamHeight:
		base.HeightM = v
	case ParamSeparation:
		base.PhaseSeparationM = v
	case ParamBundleSpacing:
		base.BundleSpacingCM = v
	case ParamSubconductors:
		// Samples land on whole bundle sizes; fractional sub-conductors
		// have no physical meaning.
		base.Subconductors = int(math.Round(v))
	default:
		return base, fmt.Errorf("sweep: unknown parameter %q", param)
	}
	return base, nil
}
