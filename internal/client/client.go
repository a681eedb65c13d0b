// Package client talks to the recipe backend's /recipe HTTP API.
//
// Every call is a single GET with no retry, no caching and no client-side
// timeout. Callers abandon a request by cancelling its context. All failures
// (network, non-2xx status, undecodable body) are reported as
// errors.KindTransport.
package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/osa/recipes/internal/errors"
	"github.com/osa/recipes/internal/logger"
	"github.com/osa/recipes/internal/recipe"
)

const (
	recipePath = "/recipe"

	// RequestIDHeader carries a per-request id so backend logs can be
	// correlated with ours.
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody bounds how much of a failed response is kept for the error.
	maxErrorBody = 512
)

// Client issues requests against a recipe backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// New creates a client for the backend rooted at baseURL
// (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{})
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logger.WithComponent("client"),
	}
}

// BaseURL returns the backend root this client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListRecipes fetches every recipe, preserving the server's order.
func (c *Client) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	if err := c.get(ctx, errors.Op("client.ListRecipes"), recipePath, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe by title.
func (c *Client) GetRecipe(ctx context.Context, title string) (recipe.Recipe, error) {
	var r recipe.Recipe
	if err := c.get(ctx, errors.Op("client.GetRecipe"), RecipePath(title), &r); err != nil {
		return recipe.Recipe{}, err
	}
	return r, nil
}

// GetInstructions fetches the generated instruction steps for a recipe.
func (c *Client) GetInstructions(ctx context.Context, title string) ([]string, error) {
	var steps []string
	if err := c.get(ctx, errors.Op("client.GetInstructions"), InstructionsPath(title), &steps); err != nil {
		return nil, err
	}
	if steps == nil {
		steps = []string{}
	}
	return steps, nil
}

// RecipePath returns the escaped request path for a recipe.
func RecipePath(title string) string {
	return recipePath + "/" + EncodePathSegment(title)
}

// InstructionsPath returns the escaped request path for a recipe's instructions.
func InstructionsPath(title string) string {
	return RecipePath(title) + "/instructions"
}

// get performs a GET against path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op errors.Op, path string, out any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.TransportFailed(op, url, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("op", string(op), "requestID", requestID, "url", url)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err, "duration", time.Since(start))
		return errors.TransportFailed(op, url, err)
	}
	defer resp.Body.Close()

	log.Debug("response received", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.UnexpectedStatus(op, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn("failed to decode response", "error", err)
		return errors.MalformedBody(op, url, err)
	}
	return nil
}
