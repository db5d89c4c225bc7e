package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"trackcatalog/internal/api"
	"trackcatalog/internal/catalog"
	"trackcatalog/internal/track"
)

const (
	bannerMessage    = "Phonk Universe track catalog is running"
	maxBodyBytes     = 1 << 20
	addedMessage     = "Track added successfully"
	deletedMessage   = "Track deleted successfully"
	notFoundDetail   = "Not Found"
	emptyBodyReason  = "request body is required"
	invalidBodyShape = "request body must be a JSON object"
)

type handlers struct {
	svc    *catalog.Service
	logger *slog.Logger
}

func (h *handlers) root(c *gin.Context) {
	c.JSON(http.StatusOK, api.BannerResponse{Message: bannerMessage, Status: api.StatusRunning})
}

func (h *handlers) ping(c *gin.Context) {
	c.JSON(http.StatusOK, api.PingFromHealth(h.svc.Health(c.Request.Context())))
}

func (h *handlers) addTrack(c *gin.Context) {
	fields, err := decodeObject(c.Writer, c.Request)
	if err != nil {
		h.fail(c, err)
		return
	}
	draft, err := track.DraftFromMap(fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	created, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.TrackResponse{
		Status:  api.StatusSuccess,
		Message: addedMessage,
		Data:    api.FromTrack(created),
	})
}

func (h *handlers) listTracks(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		h.fail(c, err)
		return
	}
	tracks, err := h.svc.List(c.Request.Context(), catalog.ListParams{
		Genre:    c.Query("genre"),
		Platform: c.Query("platform"),
		Limit:    limit,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	data := api.FromTracks(tracks)
	c.JSON(http.StatusOK, api.TrackListResponse{Status: api.StatusSuccess, Count: len(data), Data: data})
}

func (h *handlers) getTrack(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TrackResponse{Status: api.StatusSuccess, Data: api.FromTrack(found)})
}

func (h *handlers) deleteTrack(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Status: api.StatusSuccess, Message: deletedMessage})
}

func (h *handlers) genres(c *gin.Context) {
	values, err := h.svc.Genres(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ValuesResponse{Status: api.StatusSuccess, Data: api.Values(values)})
}

func (h *handlers) artists(c *gin.Context) {
	values, err := h.svc.Artists(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ValuesResponse{Status: api.StatusSuccess, Data: api.Values(values)})
}

func (h *handlers) searchTracks(c *gin.Context) {
	tracks, err := h.svc.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.SearchResponse{Status: api.StatusSuccess, Data: api.FromTracks(tracks)})
}

func (h *handlers) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, api.ErrorResponse{Status: api.StatusError, Detail: notFoundDetail})
}

// fail writes the error envelope. Backend failures were already logged by
// the catalog service.
func (h *handlers) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(api.ErrorStatus(err), api.NewError(err))
}

// decodeObject reads the request body as a single JSON object.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(body)

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &track.ValidationError{Field: "body", Reason: emptyBodyReason}
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &track.ValidationError{Field: "body", Reason: "request body is too large"}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &track.ValidationError{Field: "body", Reason: invalidBodyShape}
		}
		return nil, &track.ValidationError{Field: "body", Reason: "malformed JSON: " + err.Error()}
	}
	if fields == nil {
		return nil, &track.ValidationError{Field: "body", Reason: invalidBodyShape}
	}
	if decoder.More() {
		return nil, &track.ValidationError{Field: "body", Reason: "unexpected data after JSON object"}
	}
	return fields, nil
}

// parseLimit reads the limit query value. An absent value selects the
// service default.
func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &track.ValidationError{Field: "limit", Reason: "must be an integer"}
	}
	return limit, nil
}
