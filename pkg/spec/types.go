package spec

// LineSpec is the top-level specification for a transmission line project.
type LineSpec struct {
	SpecVersion string         `yaml:"spec_version" json:"spec_version"`
	Line        LineParameters `yaml:"line" json:"line"`
}

// LineParameters describes a flat three-phase overhead line: three
// conductors on a horizontal plane at equal height, with equal spacing
// between adjacent phases. Each phase may be a bundle of identical
// sub-conductors.
type LineParameters struct {
	HeightM             float64 `yaml:"height_m" json:"height_m"`
	PhaseSeparationM    float64 `yaml:"phase_separation_m" json:"phase_separation_m"`
	ConductorDiameterCM float64 `yaml:"conductor_diameter_cm" json:"conductor_diameter_cm"`
	BundleSpacingCM     float64 `yaml:"bundle_spacing_cm" json:"bundle_spacing_cm"`
	Subconductors       int     `yaml:"subconductors" json:"subconductors"`
}

// Radius returns the physical sub-conductor radius in meters.
func (p LineParameters) Radius() float64 {
	return p.ConductorDiameterCM / 200.0
}

// BundleSpacing returns the spacing between adjacent sub-conductors in meters.
func (p LineParameters) BundleSpacing() float64 {
	return p.BundleSpacingCM / 100.0
}

// Bundled reports whether the phase is an effective bundle. A single
// sub-conductor, or a bundle with zero spacing, collapses to the solid
// conductor case.
func (p LineParameters) Bundled() bool {
	return p.Subconductors > 1 && p.BundleSpacingCM > 0
}
