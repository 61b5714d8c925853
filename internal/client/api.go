package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/momo66-22/telegram-feed-pages/internal/reaction"
)

var (
	ErrBadStatus = fmt.Errorf("unexpected response status")
)

type SeenResult struct {
	Views   int  `json:"views"`
	Counted bool `json:"counted"`
}

type toggleRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Emoji  string `json:"emoji"`
}

// Client talks to the reaction and view endpoints. Every call carries
// a bounded timeout; a timed-out call is indistinguishable from a
// failed one for the caller.
type Client struct {
	baseURL string
	userID  string
	timeout time.Duration
	http    *http.Client
}

func NewClient(baseURL string, userID string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		timeout: timeout,
		http:    &http.Client{},
	}
}

func (c *Client) UserID() string {
	return c.userID
}

func (c *Client) GetReactions(ctx context.Context, postID string) (*reaction.State, error) {
	u := fmt.Sprintf("%s/api/reactions?%s", c.baseURL, url.Values{
		"post_id": {postID},
		"user_id": {c.userID},
	}.Encode())

	state := &reaction.State{}
	if err := c.do(ctx, http.MethodGet, u, nil, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (c *Client) ToggleReaction(ctx context.Context, postID string, kind string) (*reaction.State, error) {
	body := toggleRequest{
		PostID: postID,
		UserID: c.userID,
		Emoji:  kind,
	}

	state := &reaction.State{}
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/reactions/toggle", body, state)
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (c *Client) MarkSeen(ctx context.Context, postID string) (*SeenResult, error) {
	body := map[string]string{
		"post_id": postID,
		"user_id": c.userID,
	}

	result := &SeenResult{}
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/views/seen", body, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) do(ctx context.Context, method string, u string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d from %s", ErrBadStatus, resp.StatusCode, u)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
