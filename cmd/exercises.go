package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/input"
	"github.com/rail44/lessons/internal/numeric"
	"github.com/rail44/lessons/internal/tax"
)

func newPiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pi [terms]",
		Short: "Approximate pi with the Leibniz series",
		Long: `Approximate pi by summing the given number of Leibniz series terms.
Without an argument the pi_terms config value is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.PiTerms
			if len(args) > 0 {
				var err error
				if n, err = input.Parse[int](args[0]); err != nil {
					return err
				}
			}
			formatter.Pi(cmd.OutOrStdout(), n, numeric.ComputePi(n))
			return nil
		},
	}
}

func newSqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <x>",
		Short: "Square root by ten Newton steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := input.Parse[float64](args[0])
			if err != nil {
				return err
			}
			formatter.Sqrt(cmd.OutOrStdout(), x, numeric.ComputeSqrt(x))
			return nil
		},
	}
}

func newPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Check whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := input.Parse[int](args[0])
			if err != nil {
				return err
			}
			formatter.Prime(cmd.OutOrStdout(), n, numeric.IsPrime(n))
			return nil
		},
	}
}

func newPrimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes <n>",
		Short: "List the primes below n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := input.Parse[int](args[0])
			if err != nil {
				return err
			}
			formatter.PrimeList(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newTaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax <income> <married|single> <i|o>",
		Short: "Compute the tax owed for an income bracket",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := input.Parse[int64](args[0])
			if err != nil {
				return err
			}
			owed, err := tax.Compute(income, args[1], tax.StateCode(args[2]))
			if err != nil {
				return err
			}
			formatter.Tax(cmd.OutOrStdout(), owed)
			return nil
		},
	}
}

func newQuadraticCmd() *cobra.Command {
	var slots bool

	cmd := &cobra.Command{
		Use:   "quadratic <a> <b> <c>",
		Short: "Solve a*x^2 + b*x + c = 0",
		Long: `Solve a quadratic equation and print both real roots with two decimals.
Put negative coefficients after -- so they are not read as flags.`,
		Example: "  lessons quadratic -- 1 -3 2\n  lessons quadratic --slots -- 1 -3 2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var coef [3]float64
			for i, arg := range args {
				v, err := input.Parse[float64](arg)
				if err != nil {
					return err
				}
				coef[i] = v
			}

			var (
				roots numeric.Roots
				ok    bool
			)
			if slots {
				ok = numeric.QuadraticInto(coef[0], coef[1], coef[2], &roots.X1, &roots.X2)
			} else {
				roots, ok = numeric.Quadratic(coef[0], coef[1], coef[2])
			}
			formatter.Roots(cmd.OutOrStdout(), roots, ok)
			return nil
		},
	}

	cmd.Flags().BoolVar(&slots, "slots", false, "solve through output slots instead of a returned pair")
	return cmd
}

func newSumSquaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sumsq <n>",
		Short: "Sum the squares 1..n recursively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := input.Parse[uint64](args[0])
			if err != nil {
				return err
			}
			formatter.SumSquares(cmd.OutOrStdout(), n, numeric.SumSquares(n))
			return nil
		},
	}
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <file>",
		Short: "Count characters, blanks and lines in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := filecount.CountFile(args[0])
			if err != nil {
				return err
			}
			formatter.Counts(cmd.OutOrStdout(), counts)
			return nil
		},
	}
}
