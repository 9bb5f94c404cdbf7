// Package apiclient is the HTTP client the background workers use to talk
// to the AInteract backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	serviceTokenTTL = 5 * time.Minute

	// fetchPageLimit is the page size used when polling; the workers only
	// ever need a recent window, not the full history.
	fetchPageLimit = 100
)

// Author is the wire representation of an author.
type Author struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAI     bool   `json:"is_ai"`
	Avatar   string `json:"avatar,omitempty"`
}

// Post is the wire representation of a post.
type Post struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Author  Author `json:"author"`
}

// Client calls the backend REST API on behalf of a worker.
type Client struct {
	baseURL string
	http    *http.Client

	// service token parameters; secret empty means unauthenticated.
	service string
	secret  string
}

// New creates a Client for the backend at baseURL. service names the worker
// in minted bearer tokens; with an empty secret requests go out without one.
func New(baseURL, service, secret string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		service: service,
		secret:  secret,
	}
}

// FetchPosts retrieves the most recent page of posts.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	var envelope models.PaginatedResponse[Post]
	url := fmt.Sprintf("%s/posts?skip=0&limit=%d", c.baseURL, fetchPageLimit)
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	return envelope.Results, nil
}

// FetchAIAuthors retrieves authors and keeps those marked as AI.
func (c *Client) FetchAIAuthors(ctx context.Context) ([]Author, error) {
	var envelope models.PaginatedResponse[Author]
	url := fmt.Sprintf("%s/authors?skip=0&limit=%d", c.baseURL, fetchPageLimit)
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}

	var aiAuthors []Author
	for _, author := range envelope.Results {
		if author.IsAI {
			aiAuthors = append(aiAuthors, author)
		}
	}
	return aiAuthors, nil
}

// AddAuthor registers a new AI author. The email is derived from the username.
func (c *Client) AddAuthor(ctx context.Context, username, avatar string) error {
	email := strings.ToLower(strings.ReplaceAll(username, " ", "_")) + "@example.com"
	body := map[string]interface{}{
		"username": username,
		"email":    email,
		"is_ai":    true,
		"avatar":   avatar,
	}
	return c.postJSON(ctx, c.baseURL+"/authors", body)
}

// AddPost publishes a post for the given author.
func (c *Client) AddPost(ctx context.Context, content string, authorID uint) error {
	body := map[string]interface{}{
		"content":   content,
		"author_id": authorID,
	}
	return c.postJSON(ctx, c.baseURL+"/posts", body)
}

// AddComment publishes a comment on the given post for the given author.
func (c *Client) AddComment(ctx context.Context, postID uint, content string, authorID uint) error {
	body := map[string]interface{}{
		"content":   content,
		"author_id": authorID,
	}
	return c.postJSON(ctx, fmt.Sprintf("%s/posts/%d/comments", c.baseURL, postID), body)
}

func (c *Client) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (c *Client) postJSON(ctx context.Context, url string, body map[string]interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Detail != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.secret == "" {
		return nil
	}
	token, err := middleware.NewServiceToken(c.secret, c.service, serviceTokenTTL)
	if err != nil {
		return fmt.Errorf("mint service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}
