package deepface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the configuration for the DeepFace client
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Model    string
	Detector string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:  "http://localhost:5000",
		Timeout:  30 * time.Second,
		Model:    "VGG-Face",
		Detector: "mtcnn",
	}
}

// Client is the HTTP client for the DeepFace API. Requests are single
// attempt: a model failure surfaces immediately, there is no retry policy.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new DeepFace client
func NewClient(config Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// Represent calls POST /represent to generate face embeddings
func (c *Client) Represent(ctx context.Context, imageBase64 string) (*RepresentResponse, error) {
	req := RepresentRequest{
		Img:      imageBase64,
		Model:    c.config.Model,
		Detector: c.config.Detector,
	}

	var resp RepresentResponse
	if err := c.doRequest(ctx, http.MethodPost, "/represent", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// doRequest executes a single HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeepFaceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("deepface returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}
