package main

import (
	"context"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()

	wantAgents := []string{
		Chrome120WindowsUserAgent,
		Chrome120MacUserAgent,
		Chrome120LinuxUserAgent,
		"curl/7.68.0",
		"Wget/1.20.3",
		"RSS-Reader/1.0",
		"FeedReader/1.0",
	}
	if len(presets) != len(wantAgents) {
		t.Fatalf("got %d presets, want %d", len(presets), len(wantAgents))
	}

	wantKeys := []string{
		"User-Agent",
		"Accept",
		"Accept-Language",
		"Accept-Encoding",
		"Connection",
		"Upgrade-Insecure-Requests",
		"Cache-Control",
		"Pragma",
	}

	for i, p := range presets {
		t.Run(p.Name, func(t *testing.T) {
			if p.UserAgent() != wantAgents[i] {
				t.Errorf("User-Agent = %q, want %q", p.UserAgent(), wantAgents[i])
			}
			if len(p.Headers) != len(wantKeys) {
				t.Fatalf("got %d headers, want %d", len(p.Headers), len(wantKeys))
			}
			for j, h := range p.Headers {
				if h.Key != wantKeys[j] {
					t.Errorf("header %d = %q, want %q", j, h.Key, wantKeys[j])
				}
			}
		})
	}
}

func TestDefaultPresetsIsCopy(t *testing.T) {
	a := DefaultPresets()
	a[0].Headers[0].Value = "mutated"
	a[1].Name = "mutated"

	b := DefaultPresets()
	if b[0].UserAgent() == "mutated" || b[1].Name == "mutated" {
		t.Fatal("DefaultPresets must not expose the shared table")
	}
}

func TestPresetNewRequest(t *testing.T) {
	p := DefaultPresets()[0]
	req, err := p.NewRequest(context.Background(), feedURL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	if req.Method != http.MethodGet {
		t.Errorf("Method = %s, want GET", req.Method)
	}
	if req.URL.String() != feedURL {
		t.Errorf("URL = %s, want %s", req.URL, feedURL)
	}
	if got := req.Header.Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q, want no-cache", got)
	}

	order := req.Header[http.HeaderOrderKey]
	for i, h := range p.Headers {
		if order[i] != h.Key {
			t.Errorf("order[%d] = %q, want %q", i, order[i], h.Key)
		}
	}
	if got := req.Header[http.PHeaderOrderKey]; len(got) != len(PseudoHeaderOrder) {
		t.Errorf("pseudo header order = %v", got)
	}
}
