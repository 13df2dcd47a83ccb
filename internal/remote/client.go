// Package remote talks to a CardFlow API server on behalf of the CLI, falling
// back to the local cache when the server cannot be reached.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cardflow/internal/cache"
	"cardflow/internal/model"
	"cardflow/internal/transfer"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrQueuedOffline means a mutation could not reach the server and was
// recorded in the pending queue instead.
var ErrQueuedOffline = errors.New("server unreachable, change queued offline")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

// Session is the result of a successful login.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type Client struct {
	http  *resty.Client
	cache *cache.RedisCache
	log   zerolog.Logger
}

// NewClient targets baseURL. store may be nil, which disables offline fallback.
func NewClient(baseURL string, store *cache.RedisCache, timeout time.Duration, log zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: c, cache: store, log: log.With().Str("component", "remote").Logger()}
}

// SetToken authenticates subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Login exchanges credentials for a session and keeps its token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	c.SetToken(session.Token)
	return &session, nil
}

func (c *Client) Workspaces(ctx context.Context) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := c.read(ctx, "/api/workspaces", nil, "workspaces", &workspaces)
	return workspaces, err
}

// Boards lists boards, narrowed to workspaceID when it is not empty.
func (c *Client) Boards(ctx context.Context, workspaceID string) ([]model.Board, error) {
	var query url.Values
	if workspaceID != "" {
		query = url.Values{"workspace_id": {workspaceID}}
	}
	var boards []model.Board
	err := c.read(ctx, "/api/boards", query, "boards:"+workspaceID, &boards)
	return boards, err
}

func (c *Client) Board(ctx context.Context, boardID string) (*model.Board, error) {
	var board model.Board
	if err := c.read(ctx, "/api/boards/"+url.PathEscape(boardID), nil, "board:"+boardID, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) Cards(ctx context.Context, boardID string) ([]model.Card, error) {
	var cards []model.Card
	err := c.read(ctx, "/api/cards", url.Values{"board_id": {boardID}}, "cards:"+boardID, &cards)
	return cards, err
}

func (c *Client) Links(ctx context.Context, boardID string) ([]model.Link, error) {
	var links []model.Link
	err := c.read(ctx, "/api/links", url.Values{"board_id": {boardID}}, "links:"+boardID, &links)
	return links, err
}

func (c *Client) ExportBoard(ctx context.Context, boardID string) (*transfer.Document, error) {
	var doc transfer.Document
	if err := c.read(ctx, "/api/export/"+url.PathEscape(boardID), nil, "export:"+boardID, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) CreateCard(ctx context.Context, card model.Card) (*model.Card, error) {
	var created model.Card
	if err := c.write(ctx, http.MethodPost, "/api/cards", card, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCard(ctx context.Context, cardID string, patch model.CardPatch) (*model.Card, error) {
	var updated model.Card
	if err := c.write(ctx, http.MethodPut, "/api/cards/"+url.PathEscape(cardID), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.write(ctx, http.MethodDelete, "/api/cards/"+url.PathEscape(cardID), nil, nil)
}

// read GETs path into dest and refreshes the cache entry. When the server is
// unreachable or failing, the cached copy is served instead if there is one.
func (c *Client) read(ctx context.Context, path string, query url.Values, cacheKey string, dest any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)

	var reqErr error
	switch {
	case err != nil:
		reqErr = fmt.Errorf("GET %s: %w", path, err)
	case resp.StatusCode() >= http.StatusInternalServerError:
		reqErr = apiError(resp)
	case resp.IsError():
		return apiError(resp)
	}

	if reqErr != nil {
		if c.cache == nil {
			return reqErr
		}
		if cerr := c.cache.Get(ctx, cacheKey, dest); cerr != nil {
			if !errors.Is(cerr, cache.ErrMiss) {
				c.log.Warn().Err(cerr).Str("key", cacheKey).Msg("cache fallback failed")
			}
			return reqErr
		}
		c.log.Info().Err(reqErr).Str("key", cacheKey).Msg("served from cache")
		return nil
	}

	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if c.cache != nil {
		if err := c.cache.Put(ctx, cacheKey, dest); err != nil {
			c.log.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
		}
	}
	return nil
}

// write sends a mutation. If the request never reaches the server it is kept
// in the pending queue and ErrQueuedOffline is returned.
func (c *Client) write(ctx context.Context, method, path string, body, dest any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		if c.cache == nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return c.queue(ctx, method, path, body, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	if dest != nil {
		if err := json.Unmarshal(resp.Body(), dest); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) queue(ctx context.Context, method, path string, body any, cause error) error {
	change := cache.PendingChange{Method: method, Path: path}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode pending change: %w", err)
		}
		change.Body = data
	}

	id, err := c.cache.QueuePendingChange(ctx, change)
	if err != nil {
		return fmt.Errorf("%s %s: %w (queueing failed: %v)", method, path, cause, err)
	}
	c.log.Info().Err(cause).Int64("pending_id", id).Str("path", path).Msg("queued offline change")
	return ErrQueuedOffline
}

func apiError(resp *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := resp.String()
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
