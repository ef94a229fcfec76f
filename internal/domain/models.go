package domain

import (
	"encoding/json"
	"fmt"
)

// Mode is the coarse phase of the search screen
type Mode int

const (
	ModeForm Mode = iota
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeResults:
		return "results"
	default:
		return "form"
	}
}

// Job represents a single listing returned by the job search service.
// Fields the service sends that are not modelled here are kept in Extra
// so they survive a round trip.
type Job struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Extra       map[string]json.RawMessage
}

// jobFields maps wire names onto the typed fields of a Job
func (j *Job) jobFields() map[string]*string {
	return map[string]*string{
		"title":       &j.Title,
		"company":     &j.Company,
		"location":    &j.Location,
		"description": &j.Description,
		"url":         &j.URL,
	}
}

// UnmarshalJSON decodes the known fields and stashes everything else in Extra
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("job must be a JSON object")
	}

	*j = Job{}
	for key, dst := range j.jobFields() {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return fmt.Errorf("job field %q: %w", key, err)
		}
		delete(raw, key)
	}

	if len(raw) > 0 {
		j.Extra = raw
	}
	return nil
}

// MarshalJSON writes the known fields plus any pass-through fields
func (j Job) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(j.Extra)+5)
	for key, value := range j.Extra {
		out[key] = value
	}
	for key, src := range j.jobFields() {
		encoded, err := json.Marshal(*src)
		if err != nil {
			return nil, err
		}
		out[key] = encoded
	}
	return json.Marshal(out)
}

// SearchRequest is one outbound query to the job search service
type SearchRequest struct {
	Keywords   []string `json:"keywords"`
	Location   string   `json:"location"`
	Generation uint64   `json:"-"`
	RequestID  string   `json:"-"`
}

// SearchResult is the resolution of a SearchRequest. Err is set when the
// request failed; Jobs is only meaningful when Err is nil.
type SearchResult struct {
	Generation uint64
	Jobs       []Job
	Err        error
}
