package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trackcatalog/internal/catalog"
	"trackcatalog/internal/seed"
)

func newSeedCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled sample tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := seed.Samples()
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				out := cmd.OutOrStdout()
				existing, err := seed.Existing(runCtx, svc)
				if err != nil {
					return err
				}
				if existing > 0 && !assumeYes {
					proceed, err := confirmSeed(cmd, existing)
					if err != nil {
						return err
					}
					if !proceed {
						fmt.Fprintln(out, "Seeding cancelled.")
						return nil
					}
				}

				result, err := seed.Load(runCtx, svc, drafts, cliLogger())
				printSeedResult(out, result)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Add samples even when the catalog already has tracks")
	return cmd
}

// confirmSeed asks before adding samples to a non-empty catalog. Without a
// terminal on stdin the caller must pass --yes.
func confirmSeed(cmd *cobra.Command, existing int64) (bool, error) {
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return false, fmt.Errorf("catalog already has %d tracks; rerun with --yes to add the samples", existing)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog already has %d tracks. Add the samples anyway? (y/n): ", existing)
	return readYes(in)
}

func readYes(in io.Reader) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printSeedResult(out io.Writer, result seed.Result) {
	fmt.Fprintf(out, "Inserted %d %s", result.Inserted, plural(result.Inserted, "track", "tracks"))
	if result.Skipped > 0 {
		fmt.Fprintf(out, " (%d already present)", result.Skipped)
	}
	fmt.Fprintln(out)
	if len(result.Genres) == 0 {
		return
	}
	fmt.Fprintln(out, "Genres added:")
	for _, g := range result.Genres {
		fmt.Fprintf(out, "  - %s: %d %s\n", g.Genre, g.Count, plural(g.Count, "track", "tracks"))
	}
}
