package funtranslations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rhuss/pokedex/pkg/api"
	"github.com/rhuss/pokedex/pkg/debug"
	"github.com/rhuss/pokedex/pkg/observability"
	"github.com/rhuss/pokedex/pkg/provider"
)

const (
	providerName = "funtranslations"
	apiKeyHeader = "X-Funtranslations-Api-Secret"

	// maxLoggedText bounds the text in debug request records. The full
	// body is only written at TRACE.
	maxLoggedText = 80
)

// dialectPaths maps dialects to the translator names used in request paths.
var dialectPaths = map[api.Dialect]string{
	api.DialectClassical: "shakespeare",
	api.DialectArchaic:   "yoda",
}

// Client implements provider.Translator for FunTranslations.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// Ensure Client implements provider.Translator at compile time.
var _ provider.Translator = (*Client)(nil)

// New creates a Client with the given configuration. A nil logger uses
// slog.Default().
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("funtranslations: BaseURL is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("funtranslations: invalid BaseURL %q: %w", cfg.BaseURL, err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{cfg: cfg, client: client, logger: logger}, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return providerName
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Contents *struct {
		Translated string `json:"translated"`
	} `json:"contents"`
}

// Translate posts text to /translate/{dialect}.json and returns
// contents.translated. Blank text short-circuits without a request.
func (c *Client) Translate(ctx context.Context, text string, dialect api.Dialect) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	if !dialect.Valid() {
		c.logger.ErrorContext(ctx, "failed to translate text",
			"text", text, "dialect", dialect.String(), "error", "unsupported dialect")
		return "", false
	}

	translated, err := c.do(ctx, dialectPaths[dialect], text)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to translate text",
			"text", text, "dialect", dialect.String(), "error", err)
		return "", false
	}
	return translated, true
}

func (c *Client) do(ctx context.Context, path, text string) (string, error) {
	body, err := json.Marshal(translateRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/translate/" + path + ".json"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	debug.Log(debug.Translation, "request", "method", http.MethodPost, "url", endpoint,
		"text", debug.Truncate(text, maxLoggedText))
	debug.Raw(debug.Translation, string(body))

	start := time.Now()
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		observability.ObserveProviderCall(providerName, "error", time.Since(start))
		return "", provider.MapNetworkError(providerName, err)
	}
	defer httpResp.Body.Close()

	observability.ObserveProviderCall(providerName, observability.StatusClass(httpResp.StatusCode), time.Since(start))
	debug.Log(debug.Translation, "response", "status", httpResp.StatusCode, "elapsed", time.Since(start))

	if httpResp.StatusCode != http.StatusOK {
		return "", provider.MapHTTPError(providerName, httpResp)
	}

	var result translateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if result.Contents == nil || result.Contents.Translated == "" {
		return "", fmt.Errorf("response has no contents.translated")
	}

	return result.Contents.Translated, nil
}
