package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/britemovies/movie-catalog-api/internal/omdb"
)

// omdbStub stands in for the OMDb API. Lookups resolve against an in-memory
// fixture table; misses answer in-band like the real API does.
type omdbStub struct {
	mu       sync.Mutex
	byTitle  map[string]omdb.Payload
	byID     map[string]omdb.Payload
	failNext bool

	Server *httptest.Server
}

func newOmdbStub() *omdbStub {
	stub := &omdbStub{
		byTitle: make(map[string]omdb.Payload),
		byID:    make(map[string]omdb.Payload),
	}

	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))

	return stub
}

func (s *omdbStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	var payload omdb.Payload
	var ok bool

	if title := r.URL.Query().Get("t"); title != "" {
		payload, ok = s.byTitle[strings.ToLower(title)]
	} else if id := r.URL.Query().Get("i"); id != "" {
		payload, ok = s.byID[id]
	}

	if !ok {
		payload = omdb.Payload{Response: "False", Error: "Movie not found!"}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (s *omdbStub) Add(payload omdb.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload.Response = "True"
	s.byTitle[strings.ToLower(payload.Title)] = payload
	s.byID[payload.ImdbID] = payload
}

func (s *omdbStub) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failNext = true
}

func (s *omdbStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byTitle = make(map[string]omdb.Payload)
	s.byID = make(map[string]omdb.Payload)
	s.failNext = false
}

func (s *omdbStub) Close() {
	s.Server.Close()
}
