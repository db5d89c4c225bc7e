package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trackcatalog/internal/logging"
	"trackcatalog/internal/track"
)

const trackColumns = "id, title, artist, genre, platform, external_id, thumbnail"

// columnForKey maps document keys onto table columns.
var columnForKey = map[string]string{
	track.KeyTitle:    "title",
	track.KeyArtist:   "artist",
	track.KeyGenre:    "genre",
	track.KeyPlatform: "platform",
}

// searchKey lowercases value with simple per-rune mapping, the same rule a
// case-insensitive MongoDB regex applies, so "ß" never matches "ss".
func searchKey(value string) string {
	return cases.Lower(language.Und).String(value)
}

// Insert stores a new track unless one with the same platform and external id
// already exists, in which case a *track.DuplicateError is returned.
func (s *Store) Insert(ctx context.Context, draft track.Draft) (track.Track, error) {
	id := track.NewID()
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO tracks (
            id, title, artist, genre, platform, external_id, thumbnail,
            title_fold, artist_fold, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (platform, external_id) DO NOTHING`,
		id.String(),
		draft.Title,
		draft.Artist,
		draft.Genre,
		draft.Platform,
		draft.ExternalID,
		nullableString(draft.Thumbnail),
		searchKey(draft.Title),
		searchKey(draft.Artist),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return track.Track{}, fmt.Errorf("insert track: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return track.Track{}, fmt.Errorf("insert track rows affected: %w", err)
	}
	if affected == 0 {
		return track.Track{}, &track.DuplicateError{Platform: draft.Platform, ExternalID: draft.ExternalID}
	}
	s.logger.Debug("track inserted", logging.String(logging.FieldTrackID, id.String()))
	return draft.WithID(id), nil
}

// Find returns up to limit tracks matching filter in insertion order.
func (s *Store) Find(ctx context.Context, filter track.Filter, limit int) ([]track.Track, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Genre != "" {
		clauses = append(clauses, "genre = ?")
		args = append(args, filter.Genre)
	}
	if filter.Platform != "" {
		clauses = append(clauses, "platform = ?")
		args = append(args, filter.Platform)
	}

	query := "SELECT " + trackColumns + " FROM tracks"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY rowid LIMIT ?"
	args = append(args, limit)

	tracks, err := s.queryTracks(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find tracks: %w", err)
	}
	return tracks, nil
}

// Get fetches a track by identifier. It returns nil, nil when absent.
func (s *Store) Get(ctx context.Context, id track.ID) (*track.Track, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trackColumns+" FROM tracks WHERE id = ?", id.String())
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return &t, nil
}

// Delete removes the track with the given identifier and reports how many rows
// were removed.
func (s *Store) Delete(ctx context.Context, id track.ID) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM tracks WHERE id = ?", id.String())
	if err != nil {
		return 0, fmt.Errorf("delete track: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete track rows affected: %w", err)
	}
	return removed, nil
}

// Distinct returns every distinct value stored under key.
func (s *Store) Distinct(ctx context.Context, key string) ([]string, error) {
	column, ok := columnForKey[key]
	if !ok {
		return nil, fmt.Errorf("distinct: unsupported field %q", key)
	}
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT "+column+" FROM tracks WHERE "+column+" IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", key, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan distinct %s: %w", key, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct %s: %w", key, err)
	}
	return values, nil
}

// Search returns up to limit tracks whose title or artist contains query,
// ignoring case. The query is matched literally.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]track.Track, error) {
	needle := searchKey(query)
	tracks, err := s.queryTracks(
		ctx,
		"SELECT "+trackColumns+" FROM tracks WHERE instr(title_fold, ?) > 0 OR instr(artist_fold, ?) > 0 ORDER BY rowid LIMIT ?",
		needle,
		needle,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	return tracks, nil
}

// Count returns the number of stored tracks.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM tracks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

func (s *Store) queryTracks(ctx context.Context, query string, args ...any) ([]track.Track, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := make([]track.Track, 0)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func scanTrack(scanner interface{ Scan(dest ...any) error }) (track.Track, error) {
	var (
		id        string
		thumbnail sql.NullString
		t         track.Track
	)
	if err := scanner.Scan(&id, &t.Title, &t.Artist, &t.Genre, &t.Platform, &t.ExternalID, &thumbnail); err != nil {
		return track.Track{}, err
	}
	parsed, err := track.ParseID(id)
	if err != nil {
		return track.Track{}, fmt.Errorf("stored track id: %w", err)
	}
	t.ID = parsed
	t.Thumbnail = thumbnail.String
	return t, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
