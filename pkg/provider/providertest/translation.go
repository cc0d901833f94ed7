package providertest

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Translated returns the deterministic translation the fake produces for
// the given provider dialect path ("shakespeare" or "yoda").
func Translated(dialectPath, text string) string {
	switch dialectPath {
	case "shakespeare":
		return text + ", verily"
	case "yoda":
		return "Hmm. " + text + ", it is"
	default:
		return text
	}
}

type translateRequest struct {
	Text string `json:"text"`
}

type funError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewTranslationHandler returns a handler serving
// POST /translate/{shakespeare|yoda}.json with FunTranslations' response
// shape. Missing text yields 400, unknown dialects 404.
func NewTranslationHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /translate/{file}", func(w http.ResponseWriter, r *http.Request) {
		dialect, ok := strings.CutSuffix(r.PathValue("file"), ".json")
		if !ok || (dialect != "shakespeare" && dialect != "yoda") {
			writeFunError(w, http.StatusNotFound, "Not Found")
			return
		}

		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeFunError(w, http.StatusBadRequest, "Bad Request: text is missing.")
			return
		}

		resp := map[string]any{
			"success": map[string]int{"total": 1},
			"contents": map[string]string{
				"translated":  Translated(dialect, req.Text),
				"text":        req.Text,
				"translation": dialect,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
	return mux
}

// NewRateLimitedHandler returns a handler that rejects every request the
// way FunTranslations does once the hourly quota is exhausted.
func NewRateLimitedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFunError(w, http.StatusTooManyRequests,
			"Too Many Requests: Rate limit of 5 requests per hour exceeded. Please wait for 59 minutes and 59 seconds.")
	})
}

func writeFunError(w http.ResponseWriter, status int, message string) {
	var e funError
	e.Error.Code = status
	e.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(e)
}
