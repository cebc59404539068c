package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrendingIdeasJSON(t *testing.T) {
	content := `[
		{"title": "Idea One", "description": "First.", "target_market": "SMBs",
		 "potential_challenges": "Churn", "estimated_market_size": "$1B", "category": "SaaS"},
		{"title": "Idea Two", "description": "Second."}
	]`

	ideas, err := ParseTrendingIdeas(content)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Idea One", ideas[0].Title)
	assert.Equal(t, "SMBs", ideas[0].TargetMarket)
}

func TestParseTrendingIdeasWrappedJSON(t *testing.T) {
	content := `{"ideas": [{"title": "Wrapped", "description": "Inside an object."}]}`

	ideas, err := ParseTrendingIdeas(content)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Wrapped", ideas[0].Title)
}

func TestParseTrendingIdeasHeuristic(t *testing.T) {
	content := `Here are some trending startup ideas:

1. Vertical AI Copilots
A copilot tuned for one regulated industry at a time.
Target market: Compliance teams
Market size: $3B
Category: LegalTech

2. Edge Fleet Observability
Monitoring for distributed IoT fleets.
Challenges: Hardware heterogeneity`

	ideas, err := ParseTrendingIdeas(content)
	require.NoError(t, err)
	require.Len(t, ideas, 2)

	assert.Equal(t, "Vertical AI Copilots", ideas[0].Title)
	assert.Equal(t, "A copilot tuned for one regulated industry at a time.", ideas[0].Description)
	assert.Equal(t, "Compliance teams", ideas[0].TargetMarket)
	assert.Equal(t, "$3B", ideas[0].EstimatedMarketSize)
	assert.Equal(t, "LegalTech", ideas[0].Category)

	assert.Equal(t, "Edge Fleet Observability", ideas[1].Title)
	assert.Equal(t, "Hardware heterogeneity", ideas[1].PotentialChallenges)
}

func TestParseTrendingIdeasCapsAtSix(t *testing.T) {
	content := ""
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		content += "- " + title + " idea\nSome description.\n"
	}

	ideas, err := ParseTrendingIdeas(content)
	require.NoError(t, err)
	assert.Len(t, ideas, 6)
}

func TestParseTrendingIdeasGarbage(t *testing.T) {
	for _, content := range []string{"", "   ", "no list markers anywhere here", "{not json at all"} {
		_, err := ParseTrendingIdeas(content)
		assert.Error(t, err, "content=%q", content)
	}
}

func TestParseNewsHeuristic(t *testing.T) {
	content := `- Startup X raises $40M Series B
The round was led by a growth fund.
- Accelerator batch announced`

	news, err := ParseNews(content)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "Startup X raises $40M Series B", news[0].Title)
	assert.Equal(t, "The round was led by a growth fund.", news[0].Summary)
}

func TestParseSuggestionLines(t *testing.T) {
	content := `Some preamble the model added.
1. Talk to customers first
2) Ship a landing page
* Measure activation
Not a list item.`

	items := ParseSuggestionLines(content)
	require.Len(t, items, 3)
	assert.Equal(t, "Talk to customers first", items[0])
	assert.Equal(t, "Ship a landing page", items[1])
	assert.Equal(t, "Measure activation", items[2])

	assert.Empty(t, ParseSuggestionLines("free-form prose without any markers"))
}

func TestTrendingIdeasFallsBackOnUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := &InsightsService{endpoint: server.URL, client: &http.Client{Timeout: time.Second}}

	ideas, source := svc.TrendingIdeas(context.Background())
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, FallbackIdeas(), ideas)
}

func TestTrendingIdeasFallsBackOnUnparsableContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "content": "nothing resembling a list"}`))
	}))
	defer server.Close()

	svc := &InsightsService{endpoint: server.URL, client: &http.Client{Timeout: time.Second}}

	_, source := svc.TrendingIdeas(context.Background())
	assert.Equal(t, SourceFallback, source)
}

func TestSuggestionsUsesUpstreamWhenParsable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "content": "1. Do the thing\n2. Then the other thing"}`))
	}))
	defer server.Close()

	svc := &InsightsService{endpoint: server.URL, client: &http.Client{Timeout: time.Second}}

	items, source := svc.Suggestions(context.Background(), "my idea")
	assert.Equal(t, SourceUpstream, source)
	assert.Equal(t, []string{"Do the thing", "Then the other thing"}, items)
}

func TestUnconfiguredServiceFallsBack(t *testing.T) {
	svc := &InsightsService{client: &http.Client{Timeout: time.Second}}

	news, source := svc.StartupNews(context.Background())
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, news)
}
