package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nameswipe/internal/domain"
)

// Error is a non-2xx response from the backend. Detail carries the
// server-provided message when the body had one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// Client talks to the name-swipe backend over HTTP JSON
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Users returns the selectable profiles
func (c *Client) Users() ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON("/users", &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

// Recommendations returns the candidate queue for a profile. The
// server excludes names the profile has already decided.
func (c *Client) Recommendations(userID int) ([]domain.Name, error) {
	var names []domain.Name
	path := fmt.Sprintf("/recommendations/%d", userID)
	if err := c.getJSON(path, &names); err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}
	return names, nil
}

// SubmitSwipe records one decision for a (profile, name) pair
func (c *Client) SubmitSwipe(swipe domain.Swipe) error {
	if !swipe.Decision.Valid() {
		return fmt.Errorf("submit swipe: invalid decision %q", swipe.Decision)
	}

	body, err := json.Marshal(swipe)
	if err != nil {
		return fmt.Errorf("submit swipe: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/swipe", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("submit swipe: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("submit swipe: %w", err)
	}
	return nil
}

type generateResponse struct {
	Message string `json:"message"`
}

// Generate asks the backend to synthesize new candidate names and
// returns the server's summary message.
func (c *Client) Generate() (string, error) {
	resp, err := c.httpClient.Post(c.baseURL+"/generate", "application/json", nil)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", fmt.Errorf("generate: decode response: %w", err)
	}
	return gen.Message, nil
}

// dashboardResponse is the newer aggregate shape with one like bucket
// per tracked profile
type dashboardResponse struct {
	Matches    []domain.Name `json:"matches"`
	KyleLikes  []domain.Name `json:"kyle_likes"`
	EmilyLikes []domain.Name `json:"emily_likes"`
	Rejected   []domain.Name `json:"rejected"`
}

// Dashboard fetches the newer aggregate snapshot. Returns *Error with
// StatusCode 404 on backends that only expose /matches.
func (c *Client) Dashboard() (*domain.Dashboard, error) {
	var board dashboardResponse
	if err := c.getJSON("/dashboard", &board); err != nil {
		return nil, fmt.Errorf("fetch dashboard: %w", err)
	}

	return &domain.Dashboard{
		Matches: board.Matches,
		PerUserLikes: map[string][]domain.Name{
			"Kyle":  board.KyleLikes,
			"Emily": board.EmilyLikes,
		},
		Rejected: board.Rejected,
	}, nil
}

// Matches fetches the older aggregate shape: mutual likes only
func (c *Client) Matches() ([]domain.Name, error) {
	var names []domain.Name
	if err := c.getJSON("/matches", &names); err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}
	return names, nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkStatus converts a non-2xx response into *Error, pulling the
// "detail" field out of the body when the server sent one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var details struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &details); err == nil && details.Detail != "" {
		apiErr.Detail = details.Detail
	}
	return apiErr
}
