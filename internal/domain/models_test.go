package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobUnmarshalKeepsUnknownFields(t *testing.T) {
	body := `{"title":"Go Dev","company":"Acme","location":"Remote","description":"d","url":"https://acme.test/1","salary":"100k","tags":["go"]}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	assert.Equal(t, "Go Dev", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "https://acme.test/1", job.URL)
	require.Len(t, job.Extra, 2)
	assert.JSONEq(t, `"100k"`, string(job.Extra["salary"]))
	assert.NotContains(t, job.Extra, "title")
}

func TestJobUnmarshalMissingFieldsAreEmpty(t *testing.T) {
	var job Job
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Only title"}`), &job))
	assert.Equal(t, "Only title", job.Title)
	assert.Empty(t, job.URL)
	assert.Nil(t, job.Extra)
}

func TestJobUnmarshalRejectsNonObject(t *testing.T) {
	var job Job
	assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &job))
	assert.Error(t, json.Unmarshal([]byte(`null`), &job))
	assert.Error(t, json.Unmarshal([]byte(`{"title":42}`), &job))
}

func TestJobMarshalIncludesExtra(t *testing.T) {
	job := Job{
		Title: "SRE",
		URL:   "https://example.test",
		Extra: map[string]json.RawMessage{"remote": json.RawMessage(`true`)},
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"SRE","company":"","location":"","description":"","url":"https://example.test","remote":true}`, string(data))
}

func TestSearchRequestWireShape(t *testing.T) {
	req := SearchRequest{Keywords: []string{"Python", "Go"}, Location: "us", Generation: 7, RequestID: "abc"}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"keywords":["Python","Go"],"location":"us"}`, string(data))
}

func TestLookupCountry(t *testing.T) {
	c, ok := LookupCountry("can")
	require.True(t, ok)
	assert.Equal(t, "Canada", c.Name)

	_, ok = LookupCountry("XX")
	assert.False(t, ok)

	assert.Equal(t, 1, CountryIndex("us"))
	assert.Equal(t, -1, CountryIndex(""))
}

func TestResultFromEvent(t *testing.T) {
	jobs := []Job{{Title: "a"}}
	res, ok := ResultFromEvent(SearchCompletedEvent{Generation: 3, Jobs: jobs})
	require.True(t, ok)
	assert.Equal(t, uint64(3), res.Generation)
	assert.Equal(t, jobs, res.Jobs)
	assert.NoError(t, res.Err)

	boom := errors.New("boom")
	res, ok = ResultFromEvent(SearchFailedEvent{Generation: 4, Err: boom})
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, boom)

	_, ok = ResultFromEvent(JobAppliedEvent{})
	assert.False(t, ok)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "form", ModeForm.String())
	assert.Equal(t, "results", ModeResults.String())
}
