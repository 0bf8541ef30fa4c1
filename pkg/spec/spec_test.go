package spec

import "testing"

func TestLoadProject(t *testing.T) {
	s, err := LoadProject("../../examples/default-line")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if s.SpecVersion != "0.1.0" {
		t.Errorf("spec_version = %q, want %q", s.SpecVersion, "0.1.0")
	}
	if s.Line.HeightM != 15 {
		t.Errorf("height_m = %v, want 15", s.Line.HeightM)
	}
	if s.Line.PhaseSeparationM != 11 {
		t.Errorf("phase_separation_m = %v, want 11", s.Line.PhaseSeparationM)
	}
	if s.Line.ConductorDiameterCM != 3.18 {
		t.Errorf("conductor_diameter_cm = %v, want 3.18", s.Line.ConductorDiameterCM)
	}
	if s.Line.BundleSpacingCM != 45.72 {
		t.Errorf("bundle_spacing_cm = %v, want 45.72", s.Line.BundleSpacingCM)
	}
	if s.Line.Subconductors != 2 {
		t.Errorf("subconductors = %d, want 2", s.Line.Subconductors)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestUnitConversions(t *testing.T) {
	p := LineParameters{ConductorDiameterCM: 3.18, BundleSpacingCM: 45.72}

	if got := p.Radius(); got != 3.18/200.0 {
		t.Errorf("Radius() = %v, want 0.0159", got)
	}
	if got := p.BundleSpacing(); got != 45.72/100.0 {
		t.Errorf("BundleSpacing() = %v, want 0.4572", got)
	}
}

func TestBundled(t *testing.T) {
	cases := []struct {
		name string
		p    LineParameters
		want bool
	}{
		{"twin bundle", LineParameters{Subconductors: 2, BundleSpacingCM: 45.72}, true},
		{"single conductor", LineParameters{Subconductors: 1, BundleSpacingCM: 45.72}, false},
		{"zero spacing", LineParameters{Subconductors: 3, BundleSpacingCM: 0}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Bundled(); got != tc.want {
			t.Errorf("%s: Bundled() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
