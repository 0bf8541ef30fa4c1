package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Ranjankaf081/inductance/pkg/inductance"
	"github.com/Ranjankaf081/inductance/pkg/spec"
	"github.com/Ranjankaf081/inductance/pkg/sweep"
	"github.com/Ranjankaf081/inductance/pkg/validation"
)

// loadAndValidate loads the spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.LineSpec, *validation.Report, error) {
	lineSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.ValidateSchema(lineSpec)
	return lineSpec, report, nil
}

// domainReport wraps a solver domain error in a numeric-level validation
// report so it prints the same way schema failures do.
func domainReport(err error) *validation.Report {
	r := validation.NewReport()
	var de *inductance.DomainError
	if errors.As(err, &de) {
		r.AddError(validation.Result{
			Level:       validation.LevelNumeric,
			Message:     de.Error(),
			ActualValue: de.Value,
			Expected:    "parameters inside the image-conductor model's physical range",
		})
	}
	return r
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(projectPath string) error {
	lineSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	result, err := inductance.Solve(lineSpec.Line)
	if err != nil {
		printValidationReport(domainReport(err))
		return fmt.Errorf("solving line: %w", err)
	}

	output := map[string]any{
		"spec_version": lineSpec.SpecVersion,
		"parameters":   lineSpec.Line,
		"validation":   report,
		"result":       result,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runSteps(projectPath string) error {
	lineSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	result, err := inductance.Solve(lineSpec.Line)
	if err != nil {
		printValidationReport(domainReport(err))
		return fmt.Errorf("solving line: %w", err)
	}

	printDerivation(result)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runSweep(projectPath, param string, from, to float64, points int, out string) error {
	lineSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	series, err := sweep.Run(lineSpec.Line, sweep.Param(param), from, to, points)
	if err != nil {
		return err
	}

	printSweepTable(series)

	if out != "" {
		if err := series.WritePlot(out); err != nil {
			return err
		}
		fmt.Printf("\nChart written to %s\n", out)
	}
	return nil
}
