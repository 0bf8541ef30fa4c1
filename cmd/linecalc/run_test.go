package main

import (
	"testing"

	"github.com/Ranjankaf081/inductance/pkg/inductance"
	"github.com/Ranjankaf081/inductance/pkg/spec"
	"github.com/Ranjankaf081/inductance/pkg/validation"
)

func TestDomainReport(t *testing.T) {
	p := spec.LineParameters{
		HeightM:             15,
		PhaseSeparationM:    0, // log of zero ratio
		ConductorDiameterCM: 3.18,
		BundleSpacingCM:     45.72,
		Subconductors:       2,
	}

	_, err := inductance.Solve(p)
	if err == nil {
		t.Fatal("expected domain error for zero separation")
	}

	r := domainReport(err)
	if r.Valid {
		t.Error("domain report should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Level != validation.LevelNumeric {
		t.Errorf("level = %q, want %q", r.Errors[0].Level, validation.LevelNumeric)
	}
	if r.Errors[0].Message == "" {
		t.Error("expected the solver's message on the report entry")
	}
}
