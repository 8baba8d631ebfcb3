package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hpxml-mapper/internal/pipeline"
)

type outcome struct {
	res *pipeline.Result
	err error
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document|glob>...",
		Short: "Validate documents and report every violation",
		Long: `Validate runs the rule sets, the optional XSD and the graph checks on
each document. Globs such as "runs/**/*.xml" are expanded. Documents are
processed concurrently, up to the configured concurrency.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args)
			if err != nil {
				return err
			}

			vs, err := a.validators()
			if err != nil {
				return err
			}

			outcomes := make([]outcome, len(paths))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Concurrency)

			for i, path := range paths {
				g.Go(func() error {
					res, err := pipeline.Load(ctx, path, a.options(vs))

					var le *pipeline.LoadError
					if err != nil && !errors.As(err, &le) {
						return err
					}

					outcomes[i] = outcome{res: res, err: err}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			failed := report(cmd.OutOrStdout(), paths, outcomes)
			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) failed validation", failed, len(paths))
			}

			return nil
		},
	}
}

// report prints the outcome of every document in argument order and
// returns how many failed.
func report(w io.Writer, paths []string, outcomes []outcome) int {
	failed := 0

	for i, o := range outcomes {
		var le *pipeline.LoadError

		switch {
		case errors.As(o.err, &le):
			failed++

			printLines(w, le.Errors)
			printLines(w, le.Warnings)
		case len(o.res.Violations) > 0:
			failed++

			printLines(w, o.res.Violations)
			printLines(w, o.res.Warnings)
		default:
			printLines(w, o.res.Warnings)
			fmt.Fprintf(w, "%s: ok\n", paths[i])
		}
	}

	return failed
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// expand resolves every argument as a doublestar glob. A literal path
// matches itself when it exists. Each document is listed once.
func expand(args []string) ([]string, error) {
	var paths []string

	seen := map[string]bool{}

	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no documents match %q", arg)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	return paths, nil
}
