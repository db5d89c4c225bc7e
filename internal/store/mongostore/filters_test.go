package mongostore

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trackcatalog/internal/track"
)

func TestListFilterUsesOnlyProvidedFields(t *testing.T) {
	cases := []struct {
		name   string
		filter track.Filter
		want   bson.M
	}{
		{"empty", track.Filter{}, bson.M{}},
		{"genre", track.Filter{Genre: "Drift Phonk"}, bson.M{"genre": "Drift Phonk"}},
		{"platform", track.Filter{Platform: "youtube"}, bson.M{"platform": "youtube"}},
		{"both", track.Filter{Genre: "Phonk", Platform: "spotify"}, bson.M{"genre": "Phonk", "platform": "spotify"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := listFilter(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("listFilter(%+v) = %v, want %v", tc.filter, got, tc.want)
			}
			for key, value := range tc.want {
				if got[key] != value {
					t.Fatalf("listFilter(%+v)[%s] = %v, want %v", tc.filter, key, got[key], value)
				}
			}
		})
	}
}

func TestSearchFilterEscapesQuery(t *testing.T) {
	filter := searchFilter("a.b (remix)*")
	clauses, ok := filter["$or"].(bson.A)
	if !ok || len(clauses) != 2 {
		t.Fatalf("expected two $or clauses, got %#v", filter["$or"])
	}
	for i, key := range []string{track.KeyTitle, track.KeyArtist} {
		clause, ok := clauses[i].(bson.M)
		if !ok {
			t.Fatalf("clause %d has type %T", i, clauses[i])
		}
		pattern, ok := clause[key].(primitive.Regex)
		if !ok {
			t.Fatalf("clause %d missing regex on %s: %#v", i, key, clause)
		}
		if pattern.Options != "i" {
			t.Fatalf("expected case-insensitive option, got %q", pattern.Options)
		}
		re := regexp.MustCompile("(?i)" + pattern.Pattern)
		if !re.MatchString("Song A.B (Remix)* edit") {
			t.Fatalf("escaped pattern %q should match literal text", pattern.Pattern)
		}
		if re.MatchString("axb remix") {
			t.Fatalf("escaped pattern %q matched metacharacters", pattern.Pattern)
		}
	}
}

func TestInsertDocumentAssignsObjectID(t *testing.T) {
	draft, err := track.NewDraft(track.Draft{Title: "Sahara", Artist: "Hensonn", Platform: "youtube", ExternalID: "x1"})
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	oid := primitive.NewObjectID()
	doc := insertDocument(draft, oid)
	if doc[track.KeyID] != oid {
		t.Fatalf("expected _id %v, got %v", oid, doc[track.KeyID])
	}
	if _, ok := doc[track.KeyThumbnail]; ok {
		t.Fatal("empty thumbnail should be omitted")
	}
	if doc[track.KeyGenre] != track.DefaultGenre {
		t.Fatalf("expected default genre, got %v", doc[track.KeyGenre])
	}

	decoded, err := track.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if decoded.ID.String() != oid.Hex() || decoded.Title != "Sahara" {
		t.Fatalf("unexpected decoded track %+v", decoded)
	}
}

func TestUniqueIndexKeysOrder(t *testing.T) {
	keys := uniqueIndexKeys()
	if len(keys) != 2 || keys[0].Key != track.KeyPlatform || keys[1].Key != track.KeyExternalID {
		t.Fatalf("unexpected index keys %v", keys)
	}
}

func TestStringValuesDropsNonStrings(t *testing.T) {
	got := stringValues([]any{"Phonk", nil, int32(3), "Drift Phonk"})
	if len(got) != 2 || got[0] != "Phonk" || got[1] != "Drift Phonk" {
		t.Fatalf("unexpected values %v", got)
	}
}
