package omdb

import (
	"strconv"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

// Payload is the loosely-typed document the OMDb API returns for a single
// title. "Not found" is signaled in-band through Response/Error rather than
// an HTTP error.
type Payload struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	ImdbID   string `json:"imdbID"`
	Type     string `json:"Type"`
	Poster   string `json:"Poster"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Plot     string `json:"Plot"`
}

// Transform maps an OMDb payload to the internal movie shape. It returns nil
// for absent payloads and for in-band failures. The API's "N/A" sentinel and
// non-numeric years normalize to absent fields, never to errors.
func Transform(p *Payload) *domain.MovieData {
	if p == nil || p.Response != "True" {
		return nil
	}

	data := domain.MovieData{
		Title:     p.Title,
		ImdbID:    p.ImdbID,
		Type:      p.Type,
		PosterURL: optional(p.Poster),
		Genre:     optional(p.Genre),
		Director:  optional(p.Director),
		Plot:      optional(p.Plot),
	}

	if year, err := strconv.Atoi(p.Year); err == nil {
		data.Year = &year
	}

	return &data
}

func optional(value string) *string {
	if value == "" || value == "N/A" {
		return nil
	}

	return &value
}
