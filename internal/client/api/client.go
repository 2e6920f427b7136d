// Package api is the HTTP client for the Storyku REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storyku/internal/client/models"
	"github.com/dmitrijs2005/storyku/internal/netx"
	"github.com/dmitrijs2005/storyku/internal/tagx"
	"github.com/google/uuid"
)

const coverField = "cover_image"

type Client interface {
	Ping(ctx context.Context) error
	ListStories(ctx context.Context) ([]*models.Story, error)
	GetStory(ctx context.Context, id int64) (*models.Story, error)
	CreateStory(ctx context.Context, in StoryInput) (int64, error)
	UpdateStory(ctx context.Context, id int64, in StoryInput) error
	DeleteStory(ctx context.Context, id int64) error
	ListChapters(ctx context.Context, storyID int64) ([]*models.Chapter, error)
	GetChapter(ctx context.Context, id int64) (*models.Chapter, error)
	CreateChapter(ctx context.Context, in ChapterInput) (int64, error)
	UpdateChapter(ctx context.Context, id int64, in ChapterInput) error
	DeleteChapter(ctx context.Context, id int64) error
	CoverURL(name string) string
}

// StoryInput is a story write. CoverPath, when set, names a local file sent
// as the cover image.
type StoryInput struct {
	Title     string
	Author    string
	Synopsis  string
	Category  string
	Tags      []string
	Status    string
	CoverPath string
}

type ChapterInput struct {
	StoryID      int64  `json:"story_id,omitempty"`
	ChapterTitle string `json:"chapter_title"`
	StoryChapter string `json:"story_chapter"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	ID      int64  `json:"id"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

func idSegment(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (c *HTTPClient) do(ctx context.Context, method, target, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return mapTransportError(err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var m messageResponse
		if json.Unmarshal(data, &m) == nil && m.Message != "" {
			apiErr.Message = m.Message
			apiErr.Detail = m.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, target string, in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, method, target, "application/json", bytes.NewReader(b), out)
}

// Ping checks that the server answers its readiness probe.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var text string
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/", "", nil, &text); err != nil {
		return err
	}
	if !strings.Contains(text, "Ready") {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) ListStories(ctx context.Context) ([]*models.Story, error) {
	var list []*models.Story
	if err := c.do(ctx, http.MethodGet, c.url("stories"), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetStory(ctx context.Context, storyID int64) (*models.Story, error) {
	var s models.Story
	if err := c.do(ctx, http.MethodGet, c.url("stories", idSegment(storyID)), "", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) storyBody(in StoryInput) (io.Reader, string, error) {
	fields := map[string]string{
		"title":    in.Title,
		"author":   in.Author,
		"synopsis": in.Synopsis,
		"category": in.Category,
		"tags":     tagx.Join(in.Tags),
		"status":   in.Status,
	}
	return netx.MultipartBody(fields, coverField, in.CoverPath)
}

func (c *HTTPClient) CreateStory(ctx context.Context, in StoryInput) (int64, error) {
	body, ct, err := c.storyBody(in)
	if err != nil {
		return 0, err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, c.url("add-story"), ct, body, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *HTTPClient) UpdateStory(ctx context.Context, storyID int64, in StoryInput) error {
	body, ct, err := c.storyBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, c.url("stories", idSegment(storyID)), ct, body, nil)
}

func (c *HTTPClient) DeleteStory(ctx context.Context, storyID int64) error {
	return c.do(ctx, http.MethodDelete, c.url("stories", idSegment(storyID)), "", nil, nil)
}

func (c *HTTPClient) ListChapters(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	var list []*models.Chapter
	if err := c.do(ctx, http.MethodGet, c.url("stories", idSegment(storyID), "chapters"), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetChapter(ctx context.Context, chapterID int64) (*models.Chapter, error) {
	var ch models.Chapter
	if err := c.do(ctx, http.MethodGet, c.url("chapters", idSegment(chapterID)), "", nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *HTTPClient) CreateChapter(ctx context.Context, in ChapterInput) (int64, error) {
	var resp messageResponse
	if err := c.sendJSON(ctx, http.MethodPost, c.url("add-chapter"), in, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *HTTPClient) UpdateChapter(ctx context.Context, chapterID int64, in ChapterInput) error {
	in.StoryID = 0
	return c.sendJSON(ctx, http.MethodPut, c.url("chapters", idSegment(chapterID)), in, nil)
}

func (c *HTTPClient) DeleteChapter(ctx context.Context, chapterID int64) error {
	return c.do(ctx, http.MethodDelete, c.url("chapters", idSegment(chapterID)), "", nil, nil)
}

// CoverURL is where the server serves an uploaded cover.
func (c *HTTPClient) CoverURL(name string) string {
	return c.url("uploads", url.PathEscape(name))
}
