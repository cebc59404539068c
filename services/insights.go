// services/insights.go - AI market insights with local fallback
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

// SourceUpstream and SourceFallback tag where insight content came
// from. End users never see upstream failures; they get the fallback
// list with source "fallback" and a 200.
const (
	SourceUpstream = "upstream"
	SourceFallback = "fallback"
)

// TrendingIdea is one AI-generated startup idea.
type TrendingIdea struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	TargetMarket        string `json:"target_market"`
	PotentialChallenges string `json:"potential_challenges"`
	EstimatedMarketSize string `json:"estimated_market_size"`
	Category            string `json:"category"`
}

// NewsItem is one startup news entry.
type NewsItem struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// InsightsService talks to the external language-model proxy. Any
// failure (network, non-200, success:false, unparsable content)
// degrades to the fixed local lists.
type InsightsService struct {
	endpoint string
	client   *http.Client
}

var insightsService *InsightsService

// InitInsights configures the insights service from the environment.
func InitInsights() {
	insightsService = &InsightsService{
		endpoint: os.Getenv("INSIGHTS_PROXY_URL"),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// GetInsightsService returns the insights service.
func GetInsightsService() *InsightsService {
	if insightsService == nil {
		InitInsights()
	}
	return insightsService
}

type proxyRequest struct {
	Action string `json:"action"`
	Query  string `json:"query,omitempty"`
}

type proxyResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Error   string `json:"error"`
}

// invoke posts {action, query} to the proxy and returns its content.
func (s *InsightsService) invoke(ctx context.Context, action, query string) (string, error) {
	if s.endpoint == "" {
		return "", fmt.Errorf("insights proxy not configured")
	}

	body, err := json.Marshal(proxyRequest{Action: action, Query: query})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insights proxy status %d", resp.StatusCode)
	}

	var parsed proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if !parsed.Success {
		return "", fmt.Errorf("insights proxy error: %s", parsed.Error)
	}
	return parsed.Content, nil
}

// TrendingIdeas fetches AI-generated trending startup ideas, falling
// back to the local list on any failure.
func (s *InsightsService) TrendingIdeas(ctx context.Context) ([]TrendingIdea, string) {
	content, err := s.invoke(ctx, "trending_ideas", "")
	if err == nil {
		if ideas, perr := ParseTrendingIdeas(content); perr == nil {
			return ideas, SourceUpstream
		}
	}
	return FallbackIdeas(), SourceFallback
}

// StartupNews fetches recent startup news, falling back locally.
func (s *InsightsService) StartupNews(ctx context.Context) ([]NewsItem, string) {
	content, err := s.invoke(ctx, "startup_news", "")
	if err == nil {
		if news, perr := ParseNews(content); perr == nil {
			return news, SourceUpstream
		}
	}
	return FallbackNews(), SourceFallback
}

// Suggestions fetches idea-specific suggestions, falling back locally.
func (s *InsightsService) Suggestions(ctx context.Context, query string) ([]string, string) {
	content, err := s.invoke(ctx, "ai_suggestions", query)
	if err == nil {
		if items := ParseSuggestionLines(content); len(items) > 0 {
			return items, SourceUpstream
		}
	}
	return FallbackSuggestions(), SourceFallback
}

// itemStart matches "1.", "-", "*" list markers.
var itemStart = regexp.MustCompile(`^(\d+[.)]|[-*•])\s*`)

// labelLine matches "Key: value" detail lines inside an item.
var labelLine = regexp.MustCompile(`^(?i)(target market|market|challenges|potential challenges|market size|estimated market size|category)\s*:\s*(.+)$`)

// ParseTrendingIdeas turns language-model output into typed ideas. Two
// stages: a strict JSON attempt, then a heuristic line parser for
// numbered or bulleted prose. Returns an error when neither stage
// yields anything usable, in which case the caller switches to the fallback
// list instead of surfacing garbled output.
func ParseTrendingIdeas(content string) ([]TrendingIdea, error) {
	trimmed := strings.TrimSpace(content)

	// Stage 1: strict JSON.
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var ideas []TrendingIdea
		if err := json.Unmarshal([]byte(trimmed), &ideas); err == nil && len(ideas) > 0 {
			return capIdeas(ideas), nil
		}
		var wrapper struct {
			Ideas []TrendingIdea `json:"ideas"`
		}
		if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && len(wrapper.Ideas) > 0 {
			return capIdeas(wrapper.Ideas), nil
		}
	}

	// Stage 2: heuristic list parsing. A list marker starts a new
	// idea; "Label: value" lines fill in details; other lines extend
	// the description.
	var ideas []TrendingIdea
	var current *TrendingIdea

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if itemStart.MatchString(line) {
			if current != nil && current.Title != "" {
				ideas = append(ideas, *current)
			}
			title := itemStart.ReplaceAllString(line, "")
			title = strings.Trim(strings.TrimSpace(title), "*_#")
			current = &TrendingIdea{Title: title, Category: "Technology"}
			continue
		}

		if current == nil {
			continue
		}

		if m := labelLine.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "target market", "market":
				current.TargetMarket = value
			case "challenges", "potential challenges":
				current.PotentialChallenges = value
			case "market size", "estimated market size":
				current.EstimatedMarketSize = value
			case "category":
				current.Category = value
			}
			continue
		}

		if current.Description == "" {
			current.Description = line
		} else {
			current.Description += " " + line
		}
	}
	if current != nil && current.Title != "" {
		ideas = append(ideas, *current)
	}

	if len(ideas) == 0 {
		return nil, fmt.Errorf("no ideas found in response")
	}
	return capIdeas(ideas), nil
}

// ParseNews parses news content the same two-stage way.
func ParseNews(content string) ([]NewsItem, error) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var news []NewsItem
		if err := json.Unmarshal([]byte(trimmed), &news); err == nil && len(news) > 0 {
			return capNews(news), nil
		}
		var wrapper struct {
			News []NewsItem `json:"news"`
		}
		if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && len(wrapper.News) > 0 {
			return capNews(wrapper.News), nil
		}
	}

	var news []NewsItem
	var current *NewsItem

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if itemStart.MatchString(line) {
			if current != nil && current.Title != "" {
				news = append(news, *current)
			}
			title := strings.Trim(strings.TrimSpace(itemStart.ReplaceAllString(line, "")), "*_#")
			current = &NewsItem{Title: title, Source: "AI Insights", Category: "Startup"}
			continue
		}
		if current == nil {
			continue
		}
		if current.Summary == "" {
			current.Summary = line
		} else {
			current.Summary += " " + line
		}
	}
	if current != nil && current.Title != "" {
		news = append(news, *current)
	}

	if len(news) == 0 {
		return nil, fmt.Errorf("no news items found in response")
	}
	return capNews(news), nil
}

// ParseSuggestionLines extracts list items as plain suggestion strings.
func ParseSuggestionLines(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !itemStart.MatchString(line) {
			continue
		}
		item := strings.TrimSpace(itemStart.ReplaceAllString(line, ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func capIdeas(ideas []TrendingIdea) []TrendingIdea {
	if len(ideas) > 6 {
		ideas = ideas[:6]
	}
	return ideas
}

func capNews(news []NewsItem) []NewsItem {
	if len(news) > 8 {
		news = news[:8]
	}
	return news
}
