package validation

import (
	"math"
	"testing"

	"github.com/Ranjankaf081/inductance/pkg/spec"
)

func defaultSpec() *spec.LineSpec {
	return &spec.LineSpec{
		SpecVersion: "0.1.0",
		Line: spec.LineParameters{
			HeightM:             15,
			PhaseSeparationM:    11,
			ConductorDiameterCM: 3.18,
			BundleSpacingCM:     45.72,
			Subconductors:       2,
		},
	}
}

func TestValidateSchemaDefault(t *testing.T) {
	r := ValidateSchema(defaultSpec())
	if !r.Valid {
		for _, e := range r.Errors {
			t.Logf("error: %s", e.Message)
		}
		t.Error("expected valid report for default line")
	}
}

func TestValidateSchemaErrors(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*spec.LineSpec)
		specPath string
	}{
		{"zero height", func(s *spec.LineSpec) { s.Line.HeightM = 0 }, "line.height_m"},
		{"negative height", func(s *spec.LineSpec) { s.Line.HeightM = -4 }, "line.height_m"},
		{"NaN height", func(s *spec.LineSpec) { s.Line.HeightM = math.NaN() }, "line.height_m"},
		{"zero separation", func(s *spec.LineSpec) { s.Line.PhaseSeparationM = 0 }, "line.phase_separation_m"},
		{"infinite separation", func(s *spec.LineSpec) { s.Line.PhaseSeparationM = math.Inf(1) }, "line.phase_separation_m"},
		{"zero diameter", func(s *spec.LineSpec) { s.Line.ConductorDiameterCM = 0 }, "line.conductor_diameter_cm"},
		{"negative bundle spacing", func(s *spec.LineSpec) { s.Line.BundleSpacingCM = -1 }, "line.bundle_spacing_cm"},
		{"zero subconductors", func(s *spec.LineSpec) { s.Line.Subconductors = 0 }, "line.subconductors"},
	}

	for _, tc := range cases {
		s := defaultSpec()
		tc.mutate(s)

		r := ValidateSchema(s)
		if r.Valid {
			t.Errorf("%s: expected invalid report", tc.name)
			continue
		}
		found := false
		for _, e := range r.Errors {
			if e.SpecPath == tc.specPath {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: no error with spec path %q", tc.name, tc.specPath)
		}
	}
}

func TestValidateSchemaZeroSpacingWarning(t *testing.T) {
	s := defaultSpec()
	s.Line.BundleSpacingCM = 0

	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("zero spacing on a bundle is a warning, not an error")
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].SpecPath != "line.bundle_spacing_cm" {
		t.Errorf("warning spec path = %q", r.Warnings[0].SpecPath)
	}
}
