package research

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// Video is one search hit with its basic statistics.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	Views       uint64 `json:"views"`
	Likes       uint64 `json:"likes"`
}

// URL returns the watch link for the video.
func (v Video) URL() string { return "https://www.youtube.com/watch?v=" + v.ID }

// YouTubeClient wraps the YouTube Data API. The service (and with it the
// API key check) is built lazily on first use.
type YouTubeClient struct {
	apiKey string
	svc    *youtube.Service
}

// NewYouTubeClient reads YOUTUBE_API_KEY from the environment when apiKey
// is empty.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	if apiKey == "" {
		apiKey = os.Getenv("YOUTUBE_API_KEY")
	}
	return &YouTubeClient{apiKey: apiKey}
}

// Configured reports whether an API key is present, letting callers skip
// video research instead of failing it.
func (c *YouTubeClient) Configured() bool { return c.apiKey != "" }

func (c *YouTubeClient) service(ctx context.Context) (*youtube.Service, error) {
	if c.svc != nil {
		return c.svc, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is not set")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	c.svc = svc
	return svc, nil
}

// Search returns up to max relevance-ordered videos for the query, each
// with view and like counts filled in. Stats lookups that fail leave the
// counts at zero rather than dropping the video.
func (c *YouTubeClient) Search(ctx context.Context, query string, max int64) ([]Video, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(max).
		Type("video").
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", query, err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		v := Video{ID: item.Id.VideoId}
		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			v.Channel = item.Snippet.ChannelTitle
			v.PublishedAt = item.Snippet.PublishedAt
		}
		if stats, err := c.stats(ctx, v.ID); err == nil && stats != nil {
			v.Views = stats.ViewCount
			v.Likes = stats.LikeCount
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (c *YouTubeClient) stats(ctx context.Context, videoID string) (*youtube.VideoStatistics, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := svc.Videos.List([]string{"statistics"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube stats %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0].Statistics, nil
}

// YouTubeResearch is the tool-shaped wrapper used in prompt assembly.
type YouTubeResearch struct {
	client *YouTubeClient
}

func NewYouTubeResearch(client *YouTubeClient) *YouTubeResearch {
	return &YouTubeResearch{client: client}
}

func (y *YouTubeResearch) Name() string { return "youtube_research" }

func (y *YouTubeResearch) Blurb() string {
	return "youtube_research: searches YouTube for videos on a topic and returns titles, channels, " +
		"and view counts. Request it when the user asks what content performs in their niche or " +
		"what competitors publish. Takes a single search phrase as its argument."
}

func (y *YouTubeResearch) Run(ctx context.Context, query string) (*Result, error) {
	videos, err := y.client.Search(ctx, query, 5)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	sources := make([]string, 0, len(videos))
	for _, v := range videos {
		fmt.Fprintf(&b, "- %s (%s) — %d views, %d likes\n", v.Title, v.Channel, v.Views, v.Likes)
		sources = append(sources, v.URL())
	}
	if len(videos) == 0 {
		b.WriteString("No videos found.")
	}
	return &Result{Tool: y.Name(), Query: query, Findings: b.String(), Sources: sources}, nil
}
