package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsrecap/internal/domain"
	"newsrecap/internal/markup"
)

const (
	DefaultNewsURL = "https://openapi.naver.com/v1/search/news.json"
	DefaultTimeout = 5 * time.Second

	pageSize  = 10
	pageStart = 1
	sortOrder = "date"

	clientIDHeader     = "X-Naver-Client-Id"
	clientSecretHeader = "X-Naver-Client-Secret"

	maxErrorBodyBytes = 4 << 10
)

type Credentials struct {
	ClientID     string
	ClientSecret string
}

type searchResponse struct {
	LastBuildDate string       `json:"lastBuildDate"`
	Total         int          `json:"total"`
	Start         int          `json:"start"`
	Display       int          `json:"display"`
	Items         []searchItem `json:"items"`
}

type searchItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}

type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}

// Client looks up the most recent news for a query via the Naver search API.
type Client struct {
	newsURL     string
	credentials Credentials
	httpClient  *http.Client
	log         *slog.Logger
}

func NewClient(
	newsURL string,
	credentials Credentials,
	timeout time.Duration,
	log *slog.Logger,
) *Client {
	newsURL = strings.TrimSpace(newsURL)
	if newsURL == "" {
		newsURL = DefaultNewsURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		newsURL:     newsURL,
		credentials: credentials,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

func (c *Client) NewsURL() string {
	return c.newsURL
}

// Search returns up to ten newest items for query with markup removed.
// Every failure is an *UpstreamError.
func (c *Client) Search(ctx context.Context, query string) ([]domain.NewsItem, error) {
	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, &UpstreamError{Message: "build URL", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &UpstreamError{Message: "create request", Err: err}
	}

	req.Header.Set(clientIDHeader, c.credentials.ClientID)
	req.Header.Set(clientSecretHeader, c.credentials.ClientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: "do request", Err: err}
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			c.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"operation", "Search",
				"query", query)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(resp)
	}

	var parsed searchResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "decode response",
			Err:        err,
		}
	}

	items := make([]domain.NewsItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, domain.NewsItem{
			Title:   markup.Normalize(it.Title),
			Link:    it.Link,
			Summary: markup.Normalize(it.Description),
		})
	}

	c.log.DebugContext(ctx, "News search is done",
		"query", query,
		"total", parsed.Total,
		"itemCount", len(items))

	return items, nil
}

func (c *Client) buildURL(query string) (string, error) {
	u, err := url.Parse(c.newsURL)
	if err != nil {
		return "", fmt.Errorf("parse news URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("display", strconv.Itoa(pageSize))
	q.Set("start", strconv.Itoa(pageStart))
	q.Set("sort", sortOrder)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func newStatusError(resp *http.Response) *UpstreamError {
	upstreamErr := &UpstreamError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		upstreamErr.Err = fmt.Errorf("read error body: %w", err)
		return upstreamErr
	}

	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil && parsed.ErrorMessage != "" {
		upstreamErr.Code = parsed.ErrorCode
		upstreamErr.Message = parsed.ErrorMessage
		return upstreamErr
	}

	upstreamErr.Message = strings.TrimSpace(string(body))
	if upstreamErr.Message == "" {
		upstreamErr.Err = errors.New(http.StatusText(resp.StatusCode))
	}

	return upstreamErr
}
