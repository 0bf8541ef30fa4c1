package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "linecalc",
		Short: "Three-phase overhead line inductance calculator",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(stepsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Compute the inductance matrices and emit the full result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0])
		},
	}
}

func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps [project-path]",
		Short: "Print the stepwise derivation and the final matrices",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSteps(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a line spec without running the solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func sweepCmd() *cobra.Command {
	var (
		param  string
		from   float64
		to     float64
		points int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "sweep [project-path]",
		Short: "Sweep one parameter and tabulate (optionally chart) the inductance",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSweep(args[0], param, from, to, points, out)
		},
	}

	cmd.Flags().StringVarP(&param, "param", "P", "height", "parameter to sweep: height, separation, bundle_spacing, subconductors")
	cmd.Flags().Float64Var(&from, "from", 10, "sweep range start")
	cmd.Flags().Float64Var(&to, "to", 40, "sweep range end")
	cmd.Flags().IntVarP(&points, "points", "n", 31, "number of samples")
	cmd.Flags().StringVarP(&out, "out", "o", "", "chart file to write (png, svg or pdf)")
	return cmd
}
