package track_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"trackcatalog/internal/track"
)

func TestNewDraftDefaultsGenreAndTrims(t *testing.T) {
	d, err := track.NewDraft(track.Draft{
		Title:      "  Sahara ",
		Artist:     "Hensonn",
		Platform:   "youtube",
		ExternalID: " hH9MtcFpP5M",
	})
	if err != nil {
		t.Fatalf("NewDraft returned error: %v", err)
	}
	if d.Title != "Sahara" {
		t.Fatalf("expected trimmed title, got %q", d.Title)
	}
	if d.ExternalID != "hH9MtcFpP5M" {
		t.Fatalf("expected trimmed external id, got %q", d.ExternalID)
	}
	if d.Genre != track.DefaultGenre {
		t.Fatalf("expected default genre %q, got %q", track.DefaultGenre, d.Genre)
	}
	if d.Thumbnail != "" {
		t.Fatalf("expected empty thumbnail, got %q", d.Thumbnail)
	}
}

func TestNewDraftRequiredFields(t *testing.T) {
	valid := track.Draft{Title: "Sahara", Artist: "Hensonn", Platform: "youtube", ExternalID: "hH9MtcFpP5M"}
	cases := []struct {
		name   string
		mutate func(*track.Draft)
		field  string
	}{
		{"title", func(d *track.Draft) { d.Title = "" }, "title"},
		{"blank title", func(d *track.Draft) { d.Title = "   " }, "title"},
		{"artist", func(d *track.Draft) { d.Artist = "" }, "artist"},
		{"platform", func(d *track.Draft) { d.Platform = "" }, "platform"},
		{"external id", func(d *track.Draft) { d.ExternalID = "" }, "externalID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			_, err := track.NewDraft(d)
			var vErr *track.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
			if track.KindOf(err) != track.KindValidation {
				t.Fatalf("unexpected kind %q", track.KindOf(err))
			}
		})
	}
}

func TestDraftFromMapRejectsWrongTypes(t *testing.T) {
	_, err := track.DraftFromMap(map[string]any{
		"title":      5.0,
		"artist":     "Hensonn",
		"platform":   "youtube",
		"externalID": "abc",
	})
	var vErr *track.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "title" || vErr.Reason != "must be a string" {
		t.Fatalf("unexpected validation error: %+v", vErr)
	}
}

func TestDraftFromMapIgnoresIdentifierAndUnknownKeys(t *testing.T) {
	d, err := track.DraftFromMap(map[string]any{
		"_id":        "65f0c0ffee0000000000abcd",
		"title":      "MURDER IN MY MIND",
		"artist":     "Kordhell",
		"genre":      "Aggressive Phonk",
		"platform":   "youtube",
		"externalID": "ngXP5xYldV4",
		"duration":   143.0,
	})
	if err != nil {
		t.Fatalf("DraftFromMap returned error: %v", err)
	}
	if d.Genre != "Aggressive Phonk" {
		t.Fatalf("unexpected genre %q", d.Genre)
	}
	if _, ok := d.Document()["_id"]; ok {
		t.Fatal("draft document must not carry _id")
	}
}

func TestDraftFromMapNilBody(t *testing.T) {
	if _, err := track.DraftFromMap(nil); track.KindOf(err) != track.KindValidation {
		t.Fatalf("expected validation error for nil body, got %v", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	d, err := track.NewDraft(track.Draft{
		Title:      "SHADOW",
		Artist:     "SXID",
		Genre:      "Dark Phonk",
		Platform:   "youtube",
		ExternalID: "rPya6Yxdj0I",
		Thumbnail:  "https://img.youtube.com/vi/rPya6Yxdj0I/0.jpg",
	})
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	stored := d.WithID(track.NewID())

	decoded, err := track.FromDocument(stored.Document())
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if decoded != stored {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, stored)
	}
}

func TestFromDocumentAcceptsNativeIdentifier(t *testing.T) {
	oid := primitive.NewObjectID()
	decoded, err := track.FromDocument(map[string]any{
		"_id":        oid,
		"title":      "COWBOYS",
		"artist":     "KUTE",
		"platform":   "youtube",
		"externalID": "zOWLdP_8rVg",
	})
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if decoded.ID.String() != oid.Hex() {
		t.Fatalf("expected id %s, got %s", oid.Hex(), decoded.ID)
	}
	if decoded.Thumbnail != "" {
		t.Fatalf("expected empty thumbnail, got %q", decoded.Thumbnail)
	}
}

func TestFromDocumentErrors(t *testing.T) {
	if _, err := track.FromDocument(map[string]any{"title": "x"}); err == nil {
		t.Fatal("expected error for missing _id")
	}
	if _, err := track.FromDocument(map[string]any{"_id": primitive.NewObjectID(), "title": 3}); err == nil {
		t.Fatal("expected error for non-string field")
	}
}
