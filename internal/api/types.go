package api

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusRunning = "running"
)

// Track is the wire form of a catalog entry.
type Track struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Genre      string `json:"genre"`
	Platform   string `json:"platform"`
	ExternalID string `json:"externalID"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

// BannerResponse answers the root path.
type BannerResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// MessageResponse carries a status and a confirmation or diagnostic message.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TrackResponse wraps a single track.
type TrackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    Track  `json:"data"`
}

// TrackListResponse wraps a filtered listing. Count is the number of tracks in
// Data, not the size of the matching set.
type TrackListResponse struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Data   []Track `json:"data"`
}

// SearchResponse wraps search matches.
type SearchResponse struct {
	Status string  `json:"status"`
	Data   []Track `json:"data"`
}

// ValuesResponse wraps a list of distinct field values.
type ValuesResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}
