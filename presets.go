package main

import (
	"context"

	http "github.com/bogdanfinn/fhttp"
	"github.com/bogdanfinn/tls-client/profiles"
)

// BrowserProfile bundles a TLS client profile with its corresponding browser headers.
type BrowserProfile struct {
	TLSProfile profiles.ClientProfile
	UserAgent  string
	SecChUa    string
	Platform   string
	Mobile     string
}

// HeaderField is a single request header. Presets keep them in a slice so
// the wire order is fixed.
type HeaderField struct {
	Key   string
	Value string
}

// HeaderPreset is one simulated client identity.
type HeaderPreset struct {
	Name       string
	Headers    []HeaderField
	TLSProfile profiles.ClientProfile
}

// UserAgent returns the preset's User-Agent value.
func (p HeaderPreset) UserAgent() string {
	for _, h := range p.Headers {
		if h.Key == "User-Agent" {
			return h.Value
		}
	}
	return ""
}

// Header builds an fhttp header carrying the preset's values and order.
func (p HeaderPreset) Header() http.Header {
	header := make(http.Header, len(p.Headers)+2)
	order := make([]string, 0, len(p.Headers))
	for _, h := range p.Headers {
		header[h.Key] = []string{h.Value}
		order = append(order, h.Key)
	}
	header[http.HeaderOrderKey] = order
	header[http.PHeaderOrderKey] = PseudoHeaderOrder
	return header
}

// NewRequest creates a GET for targetURL carrying the preset's headers.
func (p HeaderPreset) NewRequest(ctx context.Context, targetURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header = p.Header()
	return req, nil
}

// feedHeaders returns the header set every preset shares, led by its User-Agent.
func feedHeaders(userAgent string) []HeaderField {
	return []HeaderField{
		{"User-Agent", userAgent},
		{"Accept", "application/rss+xml, application/xml, text/xml, */*"},
		{"Accept-Language", "en-US,en;q=0.9"},
		{"Accept-Encoding", "gzip, deflate"},
		{"Connection", "keep-alive"},
		{"Upgrade-Insecure-Requests", "1"},
		{"Cache-Control", "no-cache"},
		{"Pragma", "no-cache"},
	}
}

func newPreset(name, userAgent string, profile profiles.ClientProfile) HeaderPreset {
	return HeaderPreset{
		Name:       name,
		Headers:    feedHeaders(userAgent),
		TLSProfile: profile,
	}
}

var defaultPresets = []HeaderPreset{
	newPreset("chrome-windows", Chrome120WindowsUserAgent, chrome120Profile),
	newPreset("chrome-macos", Chrome120MacUserAgent, chrome120Profile),
	newPreset("chrome-linux", Chrome120LinuxUserAgent, chrome120Profile),
	newPreset("curl", "curl/7.68.0", profiles.DefaultClientProfile),
	newPreset("wget", "Wget/1.20.3", profiles.DefaultClientProfile),
	newPreset("rss-reader", "RSS-Reader/1.0", profiles.DefaultClientProfile),
	newPreset("feed-reader", "FeedReader/1.0", profiles.DefaultClientProfile),
}

// DefaultPresets returns a copy of the built-in identity table, in the order
// it is tried.
func DefaultPresets() []HeaderPreset {
	out := make([]HeaderPreset, len(defaultPresets))
	for i, p := range defaultPresets {
		p.Headers = append([]HeaderField(nil), p.Headers...)
		out[i] = p
	}
	return out
}
