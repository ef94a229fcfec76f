package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"jobs4u/internal/domain"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx answer
	ErrUnexpectedStatus = errors.New("unexpected status from job search service")
	// ErrMalformedResponse is returned when the body is not a JSON array of jobs
	ErrMalformedResponse = errors.New("malformed job search response")
)

// Searcher runs one query against the job search service
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Job, error)
}

// Client talks to the job search HTTP endpoint
type Client struct {
	endpoint string
	http     *resty.Client
}

// NewClient creates a client for endpoint with a per-request timeout
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Search posts the keywords and location and decodes the returned job list.
// It issues exactly one request; there are no retries.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Job, error) {
	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	body := domain.SearchRequest{Keywords: keywords, Location: req.Location}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}

	log.Printf("jobsearch: %s POST %s -> %d in %s", requestID, c.endpoint, resp.StatusCode(), time.Since(start).Round(time.Millisecond))

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	jobs, err := DecodeJobs(resp.Body())
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// DecodeJobs parses a response body. Anything other than a JSON array of
// objects is rejected so a bad answer is never mistaken for zero results.
func DecodeJobs(data []byte) ([]domain.Job, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedResponse)
	}

	jobs := make([]domain.Job, 0, len(raw))
	for i, item := range raw {
		var job domain.Job
		if err := json.Unmarshal(item, &job); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, i, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
