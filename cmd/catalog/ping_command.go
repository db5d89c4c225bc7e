package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trackcatalog/internal/catalog"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured backend answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				health := svc.Health(runCtx)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Backend: %s\n", health.Backend)
				fmt.Fprintln(out, health.Message)
				if !health.OK {
					return errors.New("backend health check failed")
				}
				return nil
			})
		},
	}
}
