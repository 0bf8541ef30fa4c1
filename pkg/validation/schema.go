package validation

import (
	"fmt"
	"math"

	"github.com/Ranjankaf081/inductance/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed LineSpec.
// It rejects non-finite and out-of-range geometry before any computation,
// so the solver only ever sees physically meaningful numbers.
func ValidateSchema(s *spec.LineSpec) *Report {
	r := NewReport()

	validateHeight(s, r)
	validateSeparation(s, r)
	validateConductor(s, r)
	validateBundle(s, r)

	return r
}

func validateHeight(s *spec.LineSpec, r *Report) {
	h := s.Line.HeightM
	if bad, why := nonFinite(h); bad {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("line.height_m is %s", why),
			SpecPath: "line.height_m",
			Expected: "finite number",
		})
		return
	}
	if h <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "height_m must be greater than 0",
			SpecPath:    "line.height_m",
			ActualValue: h,
			Expected:    "> 0",
		})
	}
}

func validateSeparation(s *spec.LineSpec, r *Report) {
	sep := s.Line.PhaseSeparationM
	if bad, why := nonFinite(sep); bad {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("line.phase_separation_m is %s", why),
			SpecPath: "line.phase_separation_m",
			Expected: "finite number",
		})
		return
	}
	if sep <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "phase_separation_m must be greater than 0",
			SpecPath:    "line.phase_separation_m",
			ActualValue: sep,
			Expected:    "> 0",
		})
	}
}

func validateConductor(s *spec.LineSpec, r *Report) {
	d := s.Line.ConductorDiameterCM
	if bad, why := nonFinite(d); bad {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("line.conductor_diameter_cm is %s", why),
			SpecPath: "line.conductor_diameter_cm",
			Expected: "finite number",
		})
		return
	}
	if d <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "conductor_diameter_cm must be greater than 0",
			SpecPath:    "line.conductor_diameter_cm",
			ActualValue: d,
			Expected:    "> 0",
		})
	}
}

func validateBundle(s *spec.LineSpec, r *Report) {
	b := s.Line.BundleSpacingCM
	n := s.Line.Subconductors

	if bad, why := nonFinite(b); bad {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("line.bundle_spacing_cm is %s", why),
			SpecPath: "line.bundle_spacing_cm",
			Expected: "finite number",
		})
		return
	}
	if b < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "bundle_spacing_cm must be non-negative",
			SpecPath:    "line.bundle_spacing_cm",
			ActualValue: b,
			Expected:    ">= 0",
		})
	}

	if n < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("subconductors must be at least 1 (got %d)", n),
			SpecPath:    "line.subconductors",
			ActualValue: n,
			Expected:    ">= 1",
			Suggestions: []string{"Use 1 for an unbundled phase conductor"},
		})
	}

	if n > 1 && b == 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("bundle of %d sub-conductors has zero spacing; phase is treated as a single solid conductor", n),
			SpecPath:    "line.bundle_spacing_cm",
			ActualValue: b,
			Suggestions: []string{"Set bundle_spacing_cm to the physical sub-conductor spacing"},
		})
	}
}

func nonFinite(v float64) (bool, string) {
	switch {
	case math.IsNaN(v):
		return true, "NaN"
	case math.IsInf(v, 0):
		return true, "infinite"
	}
	return false, ""
}
