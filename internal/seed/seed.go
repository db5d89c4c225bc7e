package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"trackcatalog/internal/logging"
	"trackcatalog/internal/track"
)

//go:embed sample_tracks.toml
var sampleTracks []byte

// Catalog is the subset of the catalog service used while seeding.
type Catalog interface {
	Create(ctx context.Context, draft track.Draft) (track.Track, error)
	Count(ctx context.Context) (int64, error)
}

type sampleFile struct {
	Tracks []sampleTrack `toml:"tracks"`
}

type sampleTrack struct {
	Title      string `toml:"title"`
	Artist     string `toml:"artist"`
	Genre      string `toml:"genre"`
	Platform   string `toml:"platform"`
	ExternalID string `toml:"external_id"`
	Thumbnail  string `toml:"thumbnail"`
}

// GenreCount reports how many inserted tracks carry a genre.
type GenreCount struct {
	Genre string
	Count int
}

// Result summarizes a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Genres   []GenreCount
}

// Samples returns the bundled sample drafts in file order.
func Samples() ([]track.Draft, error) {
	return parseSamples(sampleTracks)
}

func parseSamples(data []byte) ([]track.Draft, error) {
	var file sampleFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sample tracks: %w", err)
	}
	drafts := make([]track.Draft, 0, len(file.Tracks))
	for _, s := range file.Tracks {
		drafts = append(drafts, track.Draft{
			Title:      s.Title,
			Artist:     s.Artist,
			Genre:      s.Genre,
			Platform:   s.Platform,
			ExternalID: s.ExternalID,
			Thumbnail:  s.Thumbnail,
		})
	}
	return drafts, nil
}

// Existing returns how many tracks the catalog already holds.
func Existing(ctx context.Context, c Catalog) (int64, error) {
	return c.Count(ctx)
}

// Load creates each draft through c. Duplicates are skipped; any other error
// stops the run and is returned with the partial result.
func Load(ctx context.Context, c Catalog, drafts []track.Draft, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "seed")
	var result Result
	perGenre := make(map[string]int)
	for _, draft := range drafts {
		created, err := c.Create(ctx, draft)
		if err != nil {
			var dup *track.DuplicateError
			if errors.As(err, &dup) {
				result.Skipped++
				logger.Debug("sample already present",
					logging.String("platform", draft.Platform),
					logging.String("external_id", draft.ExternalID),
				)
				continue
			}
			result.Genres = genreCounts(perGenre)
			return result, fmt.Errorf("seed %q: %w", draft.Title, err)
		}
		result.Inserted++
		perGenre[created.Genre]++
	}
	result.Genres = genreCounts(perGenre)
	logger.Info("seeding complete",
		logging.Int("inserted", result.Inserted),
		logging.Int("skipped", result.Skipped),
		logging.String(logging.FieldEventType, "seed_complete"),
	)
	return result, nil
}

func genreCounts(perGenre map[string]int) []GenreCount {
	counts := make([]GenreCount, 0, len(perGenre))
	for genre, count := range perGenre {
		counts = append(counts, GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Genre < counts[j].Genre })
	return counts
}
