// Package debug installs the pokedex logger and gates verbose output by
// category.
//
// Categories select which part of a lookup is reported and map to the
// pipeline stages: the species call, the translation call, the engine that
// composes them, the HTTP layer and config loading. POKEDEX_DEBUG holds a
// comma-separated list ("species,translation" or "all"). POKEDEX_LOG_LEVEL
// sets the slog level; TRACE additionally dumps provider bodies through
// [Raw].
//
//	debug.Log(debug.Species, "request", "method", "GET", "url", url)
package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// Debug categories.
const (
	Species     = "species"
	Translation = "translation"
	Engine      = "engine"
	Transport   = "transport"
	Config      = "config"
	All         = "all"
)

var known = []string{Species, Translation, Engine, Transport, Config, All}

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

var (
	// Written only by Init, which runs before serving starts.
	categories map[string]bool
	rawOut     io.Writer = os.Stderr
)

func init() {
	categories = parseCategories(os.Getenv("POKEDEX_DEBUG"))
}

// Options configures Init. The POKEDEX_DEBUG and POKEDEX_LOG_LEVEL
// environment variables take precedence over Categories and Level.
type Options struct {
	Categories string
	Level      string
	Format     string // "text" or "json"
	Output     io.Writer
}

// Init sets the enabled categories and installs the default slog logger.
// Unknown category names are reported with a warning and otherwise ignored.
func Init(opts Options) {
	cats := os.Getenv("POKEDEX_DEBUG")
	if cats == "" {
		cats = opts.Categories
	}
	categories = parseCategories(cats)

	level := os.Getenv("POKEDEX_LOG_LEVEL")
	if level == "" {
		level = opts.Level
	}

	rawOut = opts.Output
	if rawOut == nil {
		rawOut = os.Stderr
	}

	slog.SetDefault(slog.New(NewHandler(rawOut, opts.Format, ParseLevel(level))))

	if unknown := unknownCategories(); len(unknown) > 0 {
		slog.Warn("ignoring unknown debug categories", "categories", unknown, "known", known)
	}
}

// NewHandler returns a JSON handler for format "json" and a text handler
// for anything else.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return slog.NewJSONHandler(w, hopts)
	}
	return slog.NewTextHandler(w, hopts)
}

// Enabled reports whether category is switched on, directly or via "all".
func Enabled(category string) bool {
	return categories[All] || categories[category]
}

// Log writes a debug record tagged with category when it is enabled.
func Log(category string, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Debug(msg, append([]any{"debug", category}, args...)...)
}

// Trace is Log at LevelTrace.
func Trace(category string, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Log(context.Background(), LevelTrace, msg, append([]any{"debug", category}, args...)...)
}

// TraceIsEnabled reports whether category is enabled and the logger
// accepts LevelTrace.
func TraceIsEnabled(category string) bool {
	return Enabled(category) && slog.Default().Enabled(context.Background(), LevelTrace)
}

// Raw prints text unformatted to the log output, for provider payloads.
// It only writes at TRACE.
func Raw(category string, text string) {
	if !TraceIsEnabled(category) {
		return
	}
	fmt.Fprintln(rawOut, text)
}

// ParseLevel maps a level name to a slog.Level. Unknown names and the
// empty string give INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Categories returns the enabled categories in sorted order.
func Categories() []string {
	result := make([]string, 0, len(categories))
	for k := range categories {
		result = append(result, k)
	}
	slices.Sort(result)
	return result
}

// Truncate shortens s to at most maxLen bytes and appends "...". It never
// cuts a multi-byte rune, so flavor texts like "POKéMON" stay valid UTF-8.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func unknownCategories() []string {
	var unknown []string
	for _, c := range Categories() {
		if !slices.Contains(known, c) {
			unknown = append(unknown, c)
		}
	}
	return unknown
}

func parseCategories(s string) map[string]bool {
	m := make(map[string]bool)
	for _, cat := range strings.Split(s, ",") {
		if cat = strings.ToLower(strings.TrimSpace(cat)); cat != "" {
			m[cat] = true
		}
	}
	return m
}
