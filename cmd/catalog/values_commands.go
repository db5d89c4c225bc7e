package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trackcatalog/internal/api"
	"trackcatalog/internal/catalog"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	return newValuesCommand(ctx, "genres", "List distinct genres", (*catalog.Service).Genres)
}

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	return newValuesCommand(ctx, "artists", "List distinct artists", (*catalog.Service).Artists)
}

func newValuesCommand(ctx *commandContext, use, short string, fetch func(*catalog.Service, context.Context) ([]string, error)) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				values, err := fetch(svc, runCtx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.ValuesResponse{Status: api.StatusSuccess, Data: api.Values(values)})
				}
				out := cmd.OutOrStdout()
				for _, value := range values {
					fmt.Fprintln(out, value)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}
