// Package lookup resolves external study resources: YouTube tutorial
// videos and solution pages on educational sites. Every lookup is best
// effort; failures degrade to an empty URL so callers can fall back to
// "no solution found" without special-casing errors.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultTimeout        = 7 * time.Second
)

// VideoFinder searches the YouTube Data API v3 for tutorial videos.
type VideoFinder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type VideoOption func(*VideoFinder)

func WithVideoBaseURL(url string) VideoOption {
	return func(f *VideoFinder) { f.baseURL = url }
}

func WithVideoClient(client *http.Client) VideoOption {
	return func(f *VideoFinder) { f.client = client }
}

// NewVideoFinder builds a finder using the given API key. An empty key
// disables lookups: FindVideo returns "" without making requests.
func NewVideoFinder(apiKey string, opts ...VideoOption) *VideoFinder {
	f := &VideoFinder{
		apiKey:  apiKey,
		baseURL: defaultYouTubeBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// YouTubeAPIKeyFromEnv reads the YouTube Data API key, preferring the
// application-scoped variable.
func YouTubeAPIKeyFromEnv() string {
	if key := os.Getenv("HELPMATE_YOUTUBE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("YOUTUBE_API_KEY")
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// FindVideo returns the watch URL of the first search hit for query, or
// "" when the API key is missing, the request fails, or nothing matches.
func (f *VideoFinder) FindVideo(ctx context.Context, query string) (string, error) {
	if f.apiKey == "" || query == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", "3")
	params.Set("key", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var result youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", nil
	}
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			return fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.ID.VideoID), nil
		}
	}
	return "", nil
}

// FindTopicVideo looks up a JEE tutorial video for a study topic.
func (f *VideoFinder) FindTopicVideo(ctx context.Context, topic string) (string, error) {
	if topic == "" {
		return "", nil
	}
	return f.FindVideo(ctx, fmt.Sprintf("JEE %s tutorial", topic))
}

// FindSolutionVideo looks up a worked solution video for a question.
func (f *VideoFinder) FindSolutionVideo(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", nil
	}
	return f.FindVideo(ctx, fmt.Sprintf("%s JEE solution", question))
}
