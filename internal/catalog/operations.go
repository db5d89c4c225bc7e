package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"trackcatalog/internal/logging"
	"trackcatalog/internal/track"
)

const maxHealthMessageRunes = 200

// Health reports whether the backend answered a liveness probe.
type Health struct {
	OK      bool
	Backend string
	Message string
}

// ListParams narrows a listing. Zero Limit selects the default limit.
type ListParams struct {
	Genre    string
	Platform string
	Limit    int
}

// Health probes the backend. It never fails; a backend error is reported in
// the returned message.
func (s *Service) Health(ctx context.Context) Health {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	backend := s.store.Name()
	if err := s.store.Ping(ctx); err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "backend ping failed", "health_check_failed",
			logging.String(logging.FieldBackend, backend),
			logging.String(logging.FieldErrorHint, "verify the store is reachable"),
			logging.Error(err),
		)
		return Health{OK: false, Backend: backend, Message: shortDiagnostic(err)}
	}
	return Health{OK: true, Backend: backend, Message: fmt.Sprintf("Pinged your deployment. Connected to %s backend.", backend)}
}

// Create validates draft and stores it when no track with the same platform
// and external id exists.
func (s *Service) Create(ctx context.Context, draft track.Draft) (track.Track, error) {
	normalized, err := track.NewDraft(draft)
	if err != nil {
		return track.Track{}, err
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	created, err := s.store.Insert(opCtx, normalized)
	if err != nil {
		var dup *track.DuplicateError
		if errors.As(err, &dup) {
			logging.WithContext(ctx, s.logger).Info("duplicate track rejected",
				logging.String("platform", normalized.Platform),
				logging.String("external_id", normalized.ExternalID),
			)
			return track.Track{}, dup
		}
		return track.Track{}, s.backendError(ctx, "create", err)
	}

	logging.WithContext(logging.WithTrackID(ctx, created.ID.String()), s.logger).Info("track created",
		logging.String("title", created.Title),
		logging.String("platform", created.Platform),
	)
	return created, nil
}

// List returns tracks whose genre and platform equal the non-empty filter
// fields exactly, capped at the requested limit. The result is never nil.
func (s *Service) List(ctx context.Context, params ListParams) ([]track.Track, error) {
	limit, err := s.resolveLimit(params.Limit)
	if err != nil {
		return nil, err
	}
	filter := track.Filter{
		Genre:    params.Genre,
		Platform: params.Platform,
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	tracks, err := s.store.Find(opCtx, filter, limit)
	if err != nil {
		return nil, s.backendError(ctx, "list", err)
	}
	if tracks == nil {
		tracks = []track.Track{}
	}
	return tracks, nil
}

func (s *Service) resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return s.opts.DefaultLimit, nil
	case limit < 0:
		return 0, &track.ValidationError{Field: "limit", Reason: "must not be negative"}
	case limit > s.opts.MaxLimit:
		return 0, &track.ValidationError{Field: "limit", Reason: fmt.Sprintf("must not exceed %d", s.opts.MaxLimit)}
	default:
		return limit, nil
	}
}

// Get fetches one track by its identifier string.
func (s *Service) Get(ctx context.Context, rawID string) (track.Track, error) {
	id, err := track.ParseID(rawID)
	if err != nil {
		return track.Track{}, err
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	found, err := s.store.Get(opCtx, id)
	if err != nil {
		return track.Track{}, s.backendError(logging.WithTrackID(ctx, id.String()), "get", err)
	}
	if found == nil {
		return track.Track{}, &track.NotFoundError{ID: id}
	}
	return *found, nil
}

// Delete removes one track by its identifier string.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := track.ParseID(rawID)
	if err != nil {
		return err
	}
	ctx = logging.WithTrackID(ctx, id.String())

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	removed, err := s.store.Delete(opCtx, id)
	if err != nil {
		return s.backendError(ctx, "delete", err)
	}
	if removed == 0 {
		return &track.NotFoundError{ID: id}
	}
	logging.WithContext(ctx, s.logger).Info("track deleted")
	return nil
}

// Genres lists the distinct genres in sorted order.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "genres", track.KeyGenre)
}

// Artists lists the distinct artists in sorted order.
func (s *Service) Artists(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "artists", track.KeyArtist)
}

func (s *Service) distinct(ctx context.Context, op, key string) ([]string, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	raw, err := s.store.Distinct(opCtx, key)
	if err != nil {
		return nil, s.backendError(ctx, op, err)
	}
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		values = append(values, value)
	}
	sort.Strings(values)
	return values, nil
}

// Search matches query literally against titles and artists, ignoring case.
// A blank query matches nothing.
func (s *Service) Search(ctx context.Context, query string) ([]track.Track, error) {
	if strings.TrimSpace(query) == "" {
		return []track.Track{}, nil
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	tracks, err := s.store.Search(opCtx, query, s.opts.SearchLimit)
	if err != nil {
		return nil, s.backendError(ctx, "search", err)
	}
	if tracks == nil {
		tracks = []track.Track{}
	}
	return tracks, nil
}

// Count returns the number of stored tracks.
func (s *Service) Count(ctx context.Context) (int64, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	count, err := s.store.Count(opCtx)
	if err != nil {
		return 0, s.backendError(ctx, "count", err)
	}
	return count, nil
}

// shortDiagnostic keeps the first line of err, clipped for display.
func shortDiagnostic(err error) string {
	msg := strings.TrimSpace(err.Error())
	if line, _, found := strings.Cut(msg, "\n"); found {
		msg = strings.TrimSpace(line)
	}
	if utf8.RuneCountInString(msg) <= maxHealthMessageRunes {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:maxHealthMessageRunes])
}
