package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trackcatalog/internal/api"
	"trackcatalog/internal/catalog"
	"trackcatalog/internal/track"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "Inspect and edit catalog tracks",
	}

	tracksCmd.AddCommand(newTracksListCommand(ctx))
	tracksCmd.AddCommand(newTracksShowCommand(ctx))
	tracksCmd.AddCommand(newTracksAddCommand(ctx))
	tracksCmd.AddCommand(newTracksRemoveCommand(ctx))
	tracksCmd.AddCommand(newTracksSearchCommand(ctx))

	return tracksCmd
}

func newTracksListCommand(ctx *commandContext) *cobra.Command {
	var params catalog.ListParams
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracks, optionally filtered by genre or platform",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				tracks, err := svc.List(runCtx, params)
				if err != nil {
					return err
				}
				if jsonOutput {
					data := api.FromTracks(tracks)
					return writeJSON(cmd, api.TrackListResponse{Status: api.StatusSuccess, Count: len(data), Data: data})
				}
				printTrackTable(cmd, tracks)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&params.Genre, "genre", "", "Only list tracks with this genre")
	cmd.Flags().StringVar(&params.Platform, "platform", "", "Only list tracks from this platform")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "Maximum number of tracks (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newTracksShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				found, err := svc.Get(runCtx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.TrackResponse{Status: api.StatusSuccess, Data: api.FromTrack(found)})
				}
				printTrackDetail(cmd, found)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newTracksAddCommand(ctx *commandContext) *cobra.Command {
	var draft track.Draft
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a track to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				created, err := svc.Create(runCtx, draft)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.TrackResponse{
						Status:  api.StatusSuccess,
						Message: "Track added successfully",
						Data:    api.FromTrack(created),
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s (id %s)\n", created.Title, created.Artist, created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Track title")
	cmd.Flags().StringVar(&draft.Artist, "artist", "", "Track artist")
	cmd.Flags().StringVar(&draft.Genre, "genre", "", "Genre (defaults to "+track.DefaultGenre+")")
	cmd.Flags().StringVar(&draft.Platform, "platform", "", "Source platform, for example youtube")
	cmd.Flags().StringVar(&draft.ExternalID, "external-id", "", "Identifier on the source platform")
	cmd.Flags().StringVar(&draft.Thumbnail, "thumbnail", "", "Thumbnail URL")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newTracksRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a track by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				if err := svc.Delete(runCtx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed track %s\n", args[0])
				return nil
			})
		},
	}
}

func newTracksSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles and artists, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(runCtx context.Context, svc *catalog.Service) error {
				tracks, err := svc.Search(runCtx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.SearchResponse{Status: api.StatusSuccess, Data: api.FromTracks(tracks)})
				}
				printTrackTable(cmd, tracks)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
