package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"godist/adapters/sample"
	"godist/domain/distribution"
	"godist/internal/api"
	"godist/internal/errors"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every distribution with its parameters and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.OutOrStdout(), api.CatalogView())
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "describe [kind]",
		Short: "Show parameters, support and moments of a distribution",
		Long: `Build a distribution from its defaults and any --param overrides, then
print its description.

Example: distcli describe gaussian --param mu=1 --param sigma=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := build(args[0], params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), api.NewSnapshot(d))
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter override as name=value (repeatable)")
	return cmd
}

func newPDFCmd(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "pdf [kind] [x...]",
		Short: "Evaluate the density or mass function at one or more points",
		Long: `Evaluate the density (continuous kinds) or probability mass (discrete
kinds) at each x. Points outside the support follow the kind's boundary
policy: a zero density, an Undefined result or an error.

Example: distcli pdf exponential 0.5 1 2 --param rate=2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := build(args[0], params)
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			points, err := api.Evaluate(d, xs)
			if err != nil {
				return err
			}
			a.logger.Debug("[distcli] evaluated %s at %d points", d.Kind(), len(points))
			return a.render(cmd.OutOrStdout(), points)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter override as name=value (repeatable)")
	return cmd
}

func newComposeCmd(a *app) *cobra.Command {
	var left, right []string

	cmd := &cobra.Command{
		Use:   "compose [kind]",
		Short: "Distribution of the sum of two independent variables of one kind",
		Long: `Compose two distributions of the same kind. Only families closed under
addition are supported: Gaussian, Poisson, Binomial (equal p), Erlang (equal
mu), Cauchy and Levy.

Example: distcli compose gaussian --left mu=1 --right mu=2 --right sigma=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a1, err := build(args[0], left)
			if err != nil {
				return err
			}
			a2, err := build(args[0], right)
			if err != nil {
				return err
			}
			sum, err := distribution.Compose(a1, a2)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), api.NewSnapshot(sum))
		},
	}

	cmd.Flags().StringArrayVar(&left, "left", nil, "left operand parameter as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&right, "right", nil, "right operand parameter as name=value (repeatable)")
	return cmd
}

func newRefreshCmd(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "refresh [kind] [sample-file...]",
		Short: "Re-derive parameters from observed data",
		Long: `Read one or more sample files (.txt one value per line, .csv or .xlsx
column per SAMPLE_COLUMN, SAMPLE_SHEET and SAMPLE_SKIP_HEADER) and refresh
the distribution's parameters from the combined sample. Supported kinds:
Bernoulli, Binomial and Uniform.

Example: distcli refresh uniform observations.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := build(args[0], params)
			if err != nil {
				return err
			}
			r, ok := d.(distribution.Refresher)
			if !ok {
				return errors.IncompatibleOperands("%s cannot be refreshed from a sample", d.Kind())
			}

			values, err := sample.ReadFiles(cmd.Context(), args[1:], a.sampleOptions(), a.cfg.Sample.Concurrency, a.logger)
			if err != nil {
				return err
			}
			if err := r.Refresh(values); err != nil {
				return err
			}
			a.logger.Info("[distcli] refreshed %s from %d observations", d.Kind(), len(values))
			return a.render(cmd.OutOrStdout(), api.NewSnapshot(r))
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "initial parameter as name=value (repeatable)")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample [sample-file...]",
		Short: "Summarize observed data before fitting it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sample.ReadFiles(cmd.Context(), args, a.sampleOptions(), a.cfg.Sample.Concurrency, a.logger)
			if err != nil {
				return err
			}
			summary, err := sample.Summarize(values)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), summary)
		},
	}
}

func newZScoreCmd(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "zscore [kind] [x]",
		Short: "Standardize x against the distribution's mean and standard deviation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := build(args[0], params)
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			z, err := distribution.ZScore(d, xs[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), api.ZScoreView{X: xs[0], ZScore: z})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter override as name=value (repeatable)")
	return cmd
}

func (a *app) sampleOptions() sample.Options {
	return sample.Options{
		Sheet:      a.cfg.Sample.Sheet,
		Column:     a.cfg.Sample.Column,
		SkipHeader: a.cfg.Sample.SkipHeader,
	}
}

// build resolves kind and constructs it from name=value overrides.
func build(kindName string, assignments []string) (distribution.Distribution, error) {
	kind, err := distribution.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	params, err := parseParams(assignments)
	if err != nil {
		return nil, err
	}
	return distribution.New(kind, params)
}

func parseParams(assignments []string) (map[string]float64, error) {
	params := make(map[string]float64, len(assignments))
	for _, assignment := range assignments {
		name, raw, ok := strings.Cut(assignment, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.InvalidInput(fmt.Sprintf("parameter %q must look like name=value", assignment))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("parameter %s: %q is not a number", name, raw))
		}
		params[strings.TrimSpace(name)] = v
	}
	return params, nil
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("%q is not a number", arg))
		}
		xs[i] = x
	}
	return xs, nil
}
