package main

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// FeedSummary is what the probe reports about a fetched document.
type FeedSummary struct {
	Type    string
	Version string
	Title   string
	Items   int
}

func (s FeedSummary) String() string {
	return fmt.Sprintf("%s %s feed %q with %d items", s.Type, s.Version, s.Title, s.Items)
}

// SummarizeFeed parses body as RSS, Atom or JSON Feed.
func SummarizeFeed(body string) (FeedSummary, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return FeedSummary{}, fmt.Errorf("failed to parse feed: %w", err)
	}
	return FeedSummary{
		Type:    feed.FeedType,
		Version: feed.FeedVersion,
		Title:   feed.Title,
		Items:   len(feed.Items),
	}, nil
}
