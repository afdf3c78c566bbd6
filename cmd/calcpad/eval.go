package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/calcpad/calc"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [EXPR...]",
		Short: "Evaluate an expression and print the result",
		Long: `Evaluate balances the parentheses of an expression and prints what the
display would show after pressing "=".

Arguments are joined into one expression. Without arguments every line of
standard input is evaluated on its own.

Examples:
  calcpad eval '2+3*4'
  calcpad eval 'sqrt(16)' + 1
  echo '(3+(4' | calcpad eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			ev := newEvaluator(cfg)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				_, err := fmt.Fprintln(out, evalLine(ev, strings.Join(args, "")))
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if _, err := fmt.Fprintln(out, evalLine(ev, line)); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		},
	}
}

func evalLine(ev *calc.Evaluator, expr string) string {
	expr = strings.Join(strings.Fields(expr), "")
	return ev.Evaluate(calc.Balance(expr))
}
