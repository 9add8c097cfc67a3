// Package gateway is the HTTP client of the post scheduling API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/transfer"
	"golang.org/x/oauth2"
)

type Gateway interface {
	ListScheduledPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error)
	UpdatePost(ctx context.Context, postID int64, pu *transfer.PostUpdate) (*models.Post, error)
	VerifySession(ctx context.Context) (*transfer.VerifyResponse, error)
	Logout(ctx context.Context) error
}

// Client is shared by all requests; For binds it to one token store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenStore
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// For returns a Gateway that reads the bearer token from tokens on every call.
func (c *Client) For(tokens session.TokenStore) Gateway {
	bound := *c
	bound.tokens = tokens
	return &bound
}

// LoginURL is where the browser goes to start the OAuth flow.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/twitter"
}

func (c *Client) client() *http.Client {
	if c.tokens == nil {
		return c.httpClient
	}
	token, ok := c.tokens.Get()
	if !ok || token == "" {
		return c.httpClient
	}

	return &http.Client{
		Timeout:       c.httpClient.Timeout,
		CheckRedirect: c.httpClient.CheckRedirect,
		Jar:           c.httpClient.Jar,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		},
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Op: op, Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &NetworkError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &NetworkError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) ListScheduledPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, "list posts", http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, "create post", http.MethodPost, "/api/posts/schedule", pc, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, postID int64, pu *transfer.PostUpdate) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/api/posts/%d", postID)
	if err := c.do(ctx, "update post", http.MethodPut, path, pu, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// VerifySession reports a denied session as Authenticated=false. Only
// transport failures and unexpected statuses are errors.
func (c *Client) VerifySession(ctx context.Context) (*transfer.VerifyResponse, error) {
	var result transfer.VerifyResponse
	err := c.do(ctx, "verify session", http.MethodGet, "/auth/verify", nil, &result)
	if IsAuthError(err) {
		return &transfer.VerifyResponse{Authenticated: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil)
}
