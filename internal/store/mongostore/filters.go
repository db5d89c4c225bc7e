package mongostore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trackcatalog/internal/track"
)

// uniqueIndexName names the compound index guarding (platform, externalID).
const uniqueIndexName = "platform_external_id_unique"

func uniqueIndexKeys() bson.D {
	return bson.D{
		{Key: track.KeyPlatform, Value: 1},
		{Key: track.KeyExternalID, Value: 1},
	}
}

// listFilter matches exact values for the non-empty filter fields only.
func listFilter(filter track.Filter) bson.M {
	query := bson.M{}
	if filter.Genre != "" {
		query[track.KeyGenre] = filter.Genre
	}
	if filter.Platform != "" {
		query[track.KeyPlatform] = filter.Platform
	}
	return query
}

// searchFilter matches query as a literal, case-insensitive substring of the
// title or artist.
func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{track.KeyTitle: pattern},
			bson.M{track.KeyArtist: pattern},
		},
	}
}

func naturalKeyFilter(platform, externalID string) bson.M {
	return bson.M{track.KeyPlatform: platform, track.KeyExternalID: externalID}
}

func idFilter(id primitive.ObjectID) bson.M {
	return bson.M{track.KeyID: id}
}

// insertDocument converts a draft into the stored document, assigning oid.
func insertDocument(draft track.Draft, oid primitive.ObjectID) bson.M {
	doc := bson.M(draft.Document())
	doc[track.KeyID] = oid
	return doc
}
