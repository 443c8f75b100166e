package main

import (
	"context"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestFormatHeaders(t *testing.T) {
	h := http.Header{
		"Server":     {"awselb/2.0"},
		"Set-Cookie": {"a=1", "b=2"},
	}
	want := `{"Server": "awselb/2.0", "Set-Cookie": "a=1, b=2"}`
	if got := formatHeaders(h); got != want {
		t.Errorf("formatHeaders() = %s, want %s", got, want)
	}
}

func TestNewNavigationRequest(t *testing.T) {
	req, err := newNavigationRequest(context.Background(), Chrome120Profile, homeURL)
	if err != nil {
		t.Fatalf("newNavigationRequest: %v", err)
	}
	// keys are stored lowercase to match the wire order list
	if got := req.Header["sec-ch-ua"]; len(got) != 1 || got[0] != Chrome120SecChUa {
		t.Errorf("sec-ch-ua = %v", got)
	}
	if got := req.Header["sec-fetch-mode"]; len(got) != 1 || got[0] != "navigate" {
		t.Errorf("sec-fetch-mode = %v", got)
	}
}
