//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type searchBody struct {
	Keywords []string `json:"keywords"`
	Location string   `json:"location"`
}

// fakeSearchService answers job searches with a fixed list
type fakeSearchService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []searchBody
	status   int
	jobs     int
}

func newFakeSearchService(t *testing.T, jobs int) *fakeSearchService {
	f := &fakeSearchService{status: http.StatusOK, jobs: jobs}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeSearchService) handle(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, body)
	status, n := f.status, f.jobs
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status != http.StatusOK {
		_, _ = w.Write([]byte(`{"detail":"unavailable"}`))
		return
	}

	jobs := make([]map[string]string, n)
	for i := range jobs {
		jobs[i] = map[string]string{
			"title":       fmt.Sprintf("Job Title %d", i+1),
			"company":     fmt.Sprintf("Company %d", i+1),
			"location":    "Remote",
			"description": fmt.Sprintf("Description of job %d", i+1),
			"url":         fmt.Sprintf("https://jobs.test/%d", i+1),
		}
	}
	_ = json.NewEncoder(w).Encode(jobs)
}

func (f *fakeSearchService) setStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *fakeSearchService) received() []searchBody {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]searchBody{}, f.requests...)
}
