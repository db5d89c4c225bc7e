package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackcatalog/internal/track"
)

func printTrackTable(cmd *cobra.Command, tracks []track.Track) {
	out := cmd.OutOrStdout()
	if len(tracks) == 0 {
		fmt.Fprintln(out, "No tracks found")
		return
	}
	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		rows = append(rows, []string{t.ID.String(), t.Title, t.Artist, t.Genre, t.Platform, t.ExternalID})
	}
	headers := []string{"ID", "Title", "Artist", "Genre", "Platform", "External ID"}
	fmt.Fprintln(out, renderTable(out, headers, rows, nil))
	fmt.Fprintf(out, "%d %s\n", len(tracks), plural(len(tracks), "track", "tracks"))
}

func printTrackDetail(cmd *cobra.Command, t track.Track) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"ID", t.ID.String()},
		{"Title", t.Title},
		{"Artist", t.Artist},
		{"Genre", t.Genre},
		{"Platform", t.Platform},
		{"External ID", t.ExternalID},
	}
	if t.Thumbnail != "" {
		rows = append(rows, []string{"Thumbnail", t.Thumbnail})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, rows, nil))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
