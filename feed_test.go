package main

import (
	"strings"
	"testing"
)

func TestSummarizeFeed(t *testing.T) {
	summary, err := SummarizeFeed(sampleRSS(4))
	if err != nil {
		t.Fatalf("SummarizeFeed: %v", err)
	}
	if summary.Type != "rss" {
		t.Errorf("Type = %q, want rss", summary.Type)
	}
	if summary.Title != "Odds" {
		t.Errorf("Title = %q, want Odds", summary.Title)
	}
	if summary.Items != 4 {
		t.Errorf("Items = %d, want 4", summary.Items)
	}
	if !strings.Contains(summary.String(), "4 items") {
		t.Errorf("String() = %q", summary.String())
	}
}

func TestSummarizeFeedRejectsHTML(t *testing.T) {
	if _, err := SummarizeFeed("<html><body>Access denied</body></html>"); err == nil {
		t.Fatal("expected an error for a non-feed document")
	}
}
