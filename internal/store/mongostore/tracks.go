package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trackcatalog/internal/logging"
	"trackcatalog/internal/track"
)

// Insert stores a new track. The unique index rejects a second document with
// the same platform and external id; while the index cannot be built, an
// existence check guards the insert instead.
func (s *Store) Insert(ctx context.Context, draft track.Draft) (track.Track, error) {
	if err := s.ensureIndexes(ctx); err != nil {
		exists, countErr := s.collection.CountDocuments(ctx, naturalKeyFilter(draft.Platform, draft.ExternalID), options.Count().SetLimit(1))
		if countErr != nil {
			return track.Track{}, fmt.Errorf("check existing track: %w", countErr)
		}
		if exists > 0 {
			return track.Track{}, &track.DuplicateError{Platform: draft.Platform, ExternalID: draft.ExternalID}
		}
	}

	oid := primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, insertDocument(draft, oid)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return track.Track{}, &track.DuplicateError{Platform: draft.Platform, ExternalID: draft.ExternalID}
		}
		return track.Track{}, fmt.Errorf("insert track: %w", err)
	}
	id := track.ID(oid.Hex())
	s.logger.Debug("track inserted", logging.String(logging.FieldTrackID, id.String()))
	return draft.WithID(id), nil
}

// Find returns up to limit tracks matching filter in natural order.
func (s *Store) Find(ctx context.Context, filter track.Filter, limit int) ([]track.Track, error) {
	cur, err := s.collection.Find(ctx, listFilter(filter), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("find tracks: %w", err)
	}
	tracks, err := decodeAll(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("find tracks: %w", err)
	}
	return tracks, nil
}

// Get fetches a track by identifier. It returns nil, nil when absent.
func (s *Store) Get(ctx context.Context, id track.ID) (*track.Track, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = s.collection.FindOne(ctx, idFilter(oid)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	t, err := track.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	return &t, nil
}

// Delete removes the track with the given identifier and reports how many
// documents were removed.
func (s *Store) Delete(ctx context.Context, id track.ID) (int64, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return 0, err
	}
	res, err := s.collection.DeleteOne(ctx, idFilter(oid))
	if err != nil {
		return 0, fmt.Errorf("delete track: %w", err)
	}
	return res.DeletedCount, nil
}

// Distinct returns every distinct string value stored under key.
func (s *Store) Distinct(ctx context.Context, key string) ([]string, error) {
	if !track.DistinctField(key) {
		return nil, fmt.Errorf("distinct: unsupported field %q", key)
	}
	raw, err := s.collection.Distinct(ctx, key, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", key, err)
	}
	return stringValues(raw), nil
}

// Search returns up to limit tracks whose title or artist contains query,
// ignoring case.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]track.Track, error) {
	cur, err := s.collection.Find(ctx, searchFilter(query), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	tracks, err := decodeAll(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	return tracks, nil
}

// Count returns the number of stored tracks.
func (s *Store) Count(ctx context.Context) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]track.Track, error) {
	defer cur.Close(ctx)
	tracks := make([]track.Track, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		t, err := track.FromDocument(doc)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, cur.Err()
}

// stringValues keeps the string entries of a distinct result.
func stringValues(raw []any) []string {
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
