package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the resume analysis service over HTTP. Both endpoints are
// synchronous JSON round trips.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type ParseResumeRequest struct {
	FileURL string `json:"fileUrl"`
}

type ParseResumeResponse struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

// JobForMatching is the job projection the matcher scores against.
type JobForMatching struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
}

type MatchJobsRequest struct {
	Skills     []string         `json:"skills"`
	Experience int              `json:"experience"`
	Jobs       []JobForMatching `json:"jobs"`
}

type MatchJobsResponse struct {
	// MatchedJobs is passed through to the caller untouched, the scoring
	// shape belongs to the matcher service.
	MatchedJobs []map[string]interface{} `json:"matched_jobs"`
}

// ParseResume extracts skills and an experience level from an uploaded
// resume file.
func (c *Client) ParseResume(ctx context.Context, fileURL string) (*ParseResumeResponse, error) {
	var out ParseResumeResponse
	err := c.post(ctx, "/api/v1/parse", ParseResumeRequest{FileURL: fileURL}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchJobs ranks the candidate jobs against the given skill set and years
// of experience.
func (c *Client) MatchJobs(ctx context.Context, req MatchJobsRequest) (*MatchJobsResponse, error) {
	var out MatchJobsResponse
	if err := c.post(ctx, "/api/v1/job-matcher", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
