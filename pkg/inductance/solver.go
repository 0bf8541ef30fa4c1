package inductance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Ranjankaf081/inductance/pkg/spec"
)

// Solve computes the Maxwell coefficient matrix and the untransposed and
// ideally-transposed inductance matrices for a flat three-phase line.
// The computation is a single deterministic pass; on any parameter outside
// the physical range of the image-conductor model it returns a *DomainError
// and no partial result.
func Solve(p spec.LineParameters) (*Result, error) {
	if err := checkInputs(p); err != nil {
		return nil, err
	}

	res := &Result{}

	// Step 1: equivalent radius (bundle GMR).
	rEq, err := equivalentRadius(p, res)
	if err != nil {
		return nil, err
	}
	res.EquivalentRadius = rEq

	// Step 2: Maxwell coefficients from conductor-to-image distances.
	// Phases sit on a horizontal line at height H with adjacent spacing S,
	// so phases 1-3 are 2S apart and every image is at depth H.
	h := p.HeightM
	s := p.PhaseSeparationM

	pSelf, err := lnRatio("self-image ratio 2H/r_eq", 2*h, rEq)
	if err != nil {
		return nil, err
	}
	res.addStep("Self coefficient",
		"P11 = ln(2H / r_eq)",
		fmt.Sprintf("P11 = ln(%.4f / %.4f) = %.4f", 2*h, rEq, pSelf),
		"distance to own image over equivalent radius; identical for all three phases at equal height")

	imgAdj := math.Hypot(2*h, s)
	pAdj, err := lnRatio("adjacent image ratio I12/S", imgAdj, s)
	if err != nil {
		return nil, err
	}
	res.addStep("Adjacent mutual coefficient",
		"P12 = ln(sqrt(4H^2 + S^2) / S)",
		fmt.Sprintf("I12 = %.4f m, P12 = ln(%.4f / %.4f) = %.4f", imgAdj, imgAdj, s, pAdj),
		"phase 1 to the image of phase 2; equals P23 by symmetry")

	imgOuter := math.Hypot(2*h, 2*s)
	pOuter, err := lnRatio("outer image ratio I13/2S", imgOuter, 2*s)
	if err != nil {
		return nil, err
	}
	res.addStep("Outer mutual coefficient",
		"P13 = ln(sqrt(4H^2 + (2S)^2) / 2S)",
		fmt.Sprintf("I13 = %.4f m, P13 = ln(%.4f / %.4f) = %.4f", imgOuter, imgOuter, 2*s, pOuter),
		"outer phases are 2S apart in the flat layout")

	maxwell := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		maxwell.SetSym(i, i, pSelf)
	}
	maxwell.SetSym(0, 1, pAdj)
	maxwell.SetSym(1, 2, pAdj)
	maxwell.SetSym(0, 2, pOuter)
	res.Maxwell = Matrix{maxwell}

	// Step 3: scale coefficients to inductance in mH/km.
	unt := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			unt.SetSym(i, j, Scale*maxwell.At(i, j))
		}
	}
	res.Untransposed = Matrix{unt}
	res.SelfInductance = Scale * pSelf
	res.MutualAdjacent = Scale * pAdj
	res.MutualOuter = Scale * pOuter

	res.addStep("Self inductance",
		"L11 = 0.2 P11",
		fmt.Sprintf("L11 = 0.2 x %.4f = %.4f mH/km", pSelf, res.SelfInductance),
		"0.2 = mu0/(2 pi) x 1000 for non-magnetic conductors")
	res.addStep("Adjacent mutual inductance",
		"L12 = 0.2 P12",
		fmt.Sprintf("L12 = 0.2 x %.4f = %.4f mH/km", pAdj, res.MutualAdjacent), "")
	res.addStep("Outer mutual inductance",
		"L13 = 0.2 P13",
		fmt.Sprintf("L13 = 0.2 x %.4f = %.4f mH/km", pOuter, res.MutualOuter), "")

	// Step 4: ideal cyclic transposition averages the mutual coefficients,
	// each pairing spending a third of the line at each relative position.
	pAvg := (2*pAdj + pOuter) / 3
	res.MutualAverage = Scale * pAvg

	tr := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		tr.SetSym(i, i, res.SelfInductance)
		for j := i + 1; j < 3; j++ {
			tr.SetSym(i, j, res.MutualAverage)
		}
	}
	res.Transposed = Matrix{tr}

	res.addStep("Transposed mutual inductance",
		"Lm = 0.2 (2 P12 + P13) / 3",
		fmt.Sprintf("Lm = 0.2 x (2 x %.4f + %.4f) / 3 = %.4f mH/km", pAdj, pOuter, res.MutualAverage),
		"ideal transposition: uniform off-diagonal, diagonal stays L11")

	return res, nil
}

// equivalentRadius derives the bundle GMR in meters and records the branch
// taken as a derivation step.
func equivalentRadius(p spec.LineParameters, res *Result) (float64, error) {
	r := p.Radius()
	b := p.BundleSpacing()

	if !p.Bundled() {
		rEq := r * GMRFactor
		if rEq <= 0 || math.IsNaN(rEq) {
			return 0, &DomainError{Quantity: "equivalent radius", Value: rEq}
		}
		res.addStep("Equivalent radius (solid conductor)",
			"r_eq = 0.7788 r",
			fmt.Sprintf("r_eq = 0.7788 x %.4f m = %.4f cm = %.4f m", r, rEq*100, rEq),
			"0.7788 = e^(-1/4) accounts for internal flux linkage of a solid round conductor")
		return rEq, nil
	}

	n := float64(p.Subconductors)
	rEq := math.Pow(n*r*math.Pow(b, n-1), 1/n)
	if rEq <= 0 || math.IsNaN(rEq) || math.IsInf(rEq, 0) {
		return 0, &DomainError{Quantity: "equivalent radius", Value: rEq}
	}
	res.addStep("Equivalent radius (bundle)",
		"r_eq = (N r B^(N-1))^(1/N)",
		fmt.Sprintf("r_eq = (%d x %.4f x %.4f^%d)^(1/%d) = %.4f cm = %.4f m",
			p.Subconductors, r, b, p.Subconductors-1, p.Subconductors, rEq*100, rEq),
		"sub-conductors on a regular polygon with adjacent spacing B")
	return rEq, nil
}

// lnRatio guards the logarithm of num/den. The image-conductor model only
// holds while the distance ratio exceeds one; anything else is a domain
// error, never a silently negative or non-finite coefficient.
func lnRatio(quantity string, num, den float64) (float64, error) {
	if den <= 0 || num <= 0 || math.IsInf(num, 0) || math.IsInf(den, 0) {
		return 0, &DomainError{Quantity: quantity, Value: num / den}
	}
	ratio := num / den
	if ratio <= 1 || math.IsNaN(ratio) {
		return 0, &DomainError{Quantity: quantity, Value: ratio}
	}
	return math.Log(ratio), nil
}

func checkInputs(p spec.LineParameters) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"height", p.HeightM},
		{"phase separation", p.PhaseSeparationM},
		{"conductor diameter", p.ConductorDiameterCM},
		{"bundle spacing", p.BundleSpacingCM},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &DomainError{Quantity: f.name, Value: f.value}
		}
	}
	if p.HeightM <= 0 {
		return &DomainError{Quantity: "height", Value: p.HeightM}
	}
	if p.PhaseSeparationM <= 0 {
		return &DomainError{Quantity: "phase separation", Value: p.PhaseSeparationM}
	}
	if p.ConductorDiameterCM <= 0 {
		return &DomainError{Quantity: "conductor diameter", Value: p.ConductorDiameterCM}
	}
	if p.BundleSpacingCM < 0 {
		return &DomainError{Quantity: "bundle spacing", Value: p.BundleSpacingCM}
	}
	if p.Subconductors < 1 {
		return &DomainError{Quantity: "subconductor count", Value: float64(p.Subconductors)}
	}
	return nil
}
