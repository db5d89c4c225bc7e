package track

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultGenre is applied when a draft omits its genre.
const DefaultGenre = "Phonk"

// Document keys shared by storage backends and the JSON wire format.
const (
	KeyID         = "_id"
	KeyTitle      = "title"
	KeyArtist     = "artist"
	KeyGenre      = "genre"
	KeyPlatform   = "platform"
	KeyExternalID = "externalID"
	KeyThumbnail  = "thumbnail"
)

// Draft is a candidate track that has not been persisted yet.
type Draft struct {
	Title      string `json:"title" validate:"required"`
	Artist     string `json:"artist" validate:"required"`
	Genre      string `json:"genre"`
	Platform   string `json:"platform" validate:"required"`
	ExternalID string `json:"externalID" validate:"required"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

// Track is a persisted catalog entry.
type Track struct {
	ID         ID     `json:"_id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Genre      string `json:"genre"`
	Platform   string `json:"platform"`
	ExternalID string `json:"externalID"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func draftValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// NewDraft normalizes and validates a candidate track. Surrounding whitespace is
// trimmed and a blank genre becomes DefaultGenre.
func NewDraft(d Draft) (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Artist = strings.TrimSpace(d.Artist)
	d.Genre = strings.TrimSpace(d.Genre)
	d.Platform = strings.TrimSpace(d.Platform)
	d.ExternalID = strings.TrimSpace(d.ExternalID)
	d.Thumbnail = strings.TrimSpace(d.Thumbnail)
	if d.Genre == "" {
		d.Genre = DefaultGenre
	}

	if err := draftValidator().Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			reason := "is invalid"
			if fe.Tag() == "required" {
				reason = "is required"
			}
			return Draft{}, &ValidationError{Field: fe.Field(), Reason: reason}
		}
		return Draft{}, &ValidationError{Reason: err.Error()}
	}
	return d, nil
}

// DraftFromMap builds a validated draft from a decoded request body. Every known
// field must be a string when present; unknown keys and _id are ignored.
func DraftFromMap(fields map[string]any) (Draft, error) {
	if fields == nil {
		return Draft{}, &ValidationError{Reason: "request body must be a JSON object"}
	}
	var d Draft
	targets := []struct {
		key string
		dst *string
	}{
		{KeyTitle, &d.Title},
		{KeyArtist, &d.Artist},
		{KeyGenre, &d.Genre},
		{KeyPlatform, &d.Platform},
		{KeyExternalID, &d.ExternalID},
		{KeyThumbnail, &d.Thumbnail},
	}
	for _, target := range targets {
		raw, ok := fields[target.key]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return Draft{}, &ValidationError{Field: target.key, Reason: "must be a string"}
		}
		*target.dst = value
	}
	return NewDraft(d)
}

// Document returns the canonical storage mapping of the draft.
func (d Draft) Document() map[string]any {
	doc := map[string]any{
		KeyTitle:      d.Title,
		KeyArtist:     d.Artist,
		KeyGenre:      d.Genre,
		KeyPlatform:   d.Platform,
		KeyExternalID: d.ExternalID,
	}
	if d.Thumbnail != "" {
		doc[KeyThumbnail] = d.Thumbnail
	}
	return doc
}

// WithID attaches a store-assigned identifier to the draft.
func (d Draft) WithID(id ID) Track {
	return Track{
		ID:         id,
		Title:      d.Title,
		Artist:     d.Artist,
		Genre:      d.Genre,
		Platform:   d.Platform,
		ExternalID: d.ExternalID,
		Thumbnail:  d.Thumbnail,
	}
}

// Draft strips the identifier from a stored track.
func (t Track) Draft() Draft {
	return Draft{
		Title:      t.Title,
		Artist:     t.Artist,
		Genre:      t.Genre,
		Platform:   t.Platform,
		ExternalID: t.ExternalID,
		Thumbnail:  t.Thumbnail,
	}
}

// Document returns the canonical storage mapping of the track, including _id.
func (t Track) Document() map[string]any {
	doc := t.Draft().Document()
	doc[KeyID] = string(t.ID)
	return doc
}

// FromDocument decodes a stored document. Missing optional fields stay empty;
// a missing identifier or a non-string field is an error.
func FromDocument(doc map[string]any) (Track, error) {
	var t Track
	switch raw := doc[KeyID].(type) {
	case primitive.ObjectID:
		t.ID = ID(raw.Hex())
	case string:
		id, err := ParseID(raw)
		if err != nil {
			return Track{}, err
		}
		t.ID = id
	case nil:
		return Track{}, errors.New("document has no _id")
	default:
		return Track{}, fmt.Errorf("document _id has unsupported type %T", raw)
	}

	targets := []struct {
		key string
		dst *string
	}{
		{KeyTitle, &t.Title},
		{KeyArtist, &t.Artist},
		{KeyGenre, &t.Genre},
		{KeyPlatform, &t.Platform},
		{KeyExternalID, &t.ExternalID},
		{KeyThumbnail, &t.Thumbnail},
	}
	for _, target := range targets {
		raw, ok := doc[target.key]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return Track{}, fmt.Errorf("document field %s has type %T, want string", target.key, raw)
		}
		*target.dst = value
	}
	return t, nil
}
