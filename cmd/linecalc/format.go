package main

import (
	"fmt"
	"strings"

	"github.com/Ranjankaf081/inductance/pkg/inductance"
	"github.com/Ranjankaf081/inductance/pkg/sweep"
	"github.com/Ranjankaf081/inductance/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printDerivation(res *inductance.Result) {
	fmt.Println("Derivation")
	fmt.Println("==========")
	for i, step := range res.Steps {
		fmt.Printf("%2d. %s\n", i+1, step.Label)
		fmt.Printf("      %s\n", step.Formula)
		fmt.Printf("      %s\n", step.Value)
		if step.Note != "" {
			fmt.Printf("      (%s)\n", step.Note)
		}
	}

	fmt.Println()
	printMatrix("Maxwell coefficients [P]", inductance.FormatMatrix4(res.Maxwell))
	printMatrix("Inductance, untransposed [L] (mH/km)", inductance.FormatMatrix4(res.Untransposed))
	printMatrix("Inductance, transposed [L'] (mH/km)", inductance.FormatMatrix4(res.Transposed))

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Equivalent radius:   %.4f m\n", res.EquivalentRadius)
	fmt.Printf("  Self inductance:     %.4f mH/km\n", res.SelfInductance)
	fmt.Printf("  Avg mutual (transp): %.4f mH/km\n", res.MutualAverage)
}

func printMatrix(label string, rows [][]string) {
	fmt.Println(label)
	for _, row := range rows {
		fmt.Printf("  [ %s ]\n", strings.Join(row, "  "))
	}
	fmt.Println()
}

func printSweepTable(s *sweep.Series) {
	header := fmt.Sprintf("%s (%s)", s.Param, s.Unit)
	fmt.Printf("%-18s %16s %16s\n", header, "self (mH/km)", "avg mutual (mH/km)")
	fmt.Printf("%-18s %16s %16s\n", strings.Repeat("-", 18), strings.Repeat("-", 16), strings.Repeat("-", 16))
	for _, pt := range s.Points {
		fmt.Printf("%-18.4f %16.4f %16.4f\n", pt.Value, pt.SelfInductance, pt.MutualAverage)
	}
}
