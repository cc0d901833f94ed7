package providertest

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RecordedRequest captures an inbound request seen by a Recorder.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// Recorder wraps a handler and records every request it serves.
// It is safe for concurrent use.
type Recorder struct {
	next http.Handler

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewRecorder wraps next.
func NewRecorder(next http.Handler) *Recorder {
	return &Recorder{next: next}
}

// ServeHTTP records the request and delegates to the wrapped handler.
func (rec *Recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	rec.mu.Lock()
	rec.requests = append(rec.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	rec.mu.Unlock()

	rec.next.ServeHTTP(w, r)
}

// Requests returns a copy of the recorded requests.
func (rec *Recorder) Requests() []RecordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]RecordedRequest, len(rec.requests))
	copy(out, rec.requests)
	return out
}

// Count returns the number of recorded requests.
func (rec *Recorder) Count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}

// Reset discards all recorded requests.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.requests = nil
}
