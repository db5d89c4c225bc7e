package api

import (
	"net/http"

	"trackcatalog/internal/catalog"
	"trackcatalog/internal/track"
)

// BackendFailureDetail replaces storage error text in client responses.
const BackendFailureDetail = "storage operation failed"

// FromTrack converts a stored track into its wire form.
func FromTrack(t track.Track) Track {
	return Track{
		ID:         t.ID.String(),
		Title:      t.Title,
		Artist:     t.Artist,
		Genre:      t.Genre,
		Platform:   t.Platform,
		ExternalID: t.ExternalID,
		Thumbnail:  t.Thumbnail,
	}
}

// FromTracks converts a slice of tracks, never returning nil.
func FromTracks(tracks []track.Track) []Track {
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, FromTrack(t))
	}
	return out
}

// Values copies distinct values, never returning nil.
func Values(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// PingFromHealth renders a health probe. The HTTP status is always 200; the
// envelope status reflects the probe.
func PingFromHealth(h catalog.Health) MessageResponse {
	status := StatusSuccess
	if !h.OK {
		status = StatusError
	}
	return MessageResponse{Status: status, Message: h.Message}
}

// NewError builds an error envelope for err.
func NewError(err error) ErrorResponse {
	return ErrorResponse{Status: StatusError, Detail: ErrorDetail(err)}
}

// ErrorStatus maps err onto an HTTP status code.
func ErrorStatus(err error) int {
	switch track.KindOf(err) {
	case track.KindValidation:
		return http.StatusUnprocessableEntity
	case track.KindDuplicate, track.KindInvalidID:
		return http.StatusBadRequest
	case track.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorDetail returns the client-facing message for err.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	switch track.KindOf(err) {
	case track.KindValidation, track.KindInvalidID:
		return err.Error()
	case track.KindDuplicate:
		return "Track already exists in the database"
	case track.KindNotFound:
		return "Track not found"
	default:
		return BackendFailureDetail
	}
}
