package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	http "github.com/bogdanfinn/fhttp"
)

// FetchAttemptResult is the outcome of one request. Transport failures are
// recorded in Err; everything else is a normal response.
type FetchAttemptResult struct {
	Label      string
	StatusCode int
	Length     int
	Body       []byte
	Header     http.Header
	Challenge  string
	Err        error
}

// Success reports whether the response looks like real feed content rather
// than a block page: status 200 and a body longer than minBytes.
func (r FetchAttemptResult) Success(minBytes int) bool {
	return r.Err == nil && r.StatusCode == http.StatusOK && r.Length > minBytes
}

// FeedFetcher tries each header preset in order and falls back to a
// cookie-bearing session when none of them gets through.
type FeedFetcher struct {
	cfg       Config
	feedURL   string
	homeURL   string
	presets   []HeaderPreset
	newClient ClientFactory
	proxies   *ProxyPool
	logger    Logger

	sleep     func(time.Duration)
	randFloat func() float64
}

func NewFeedFetcher(cfg Config, newClient ClientFactory, proxies *ProxyPool, logger Logger) *FeedFetcher {
	return &FeedFetcher{
		cfg:       cfg,
		feedURL:   feedURL,
		homeURL:   homeURL,
		presets:   DefaultPresets(),
		newClient: newClient,
		proxies:   proxies,
		logger:    logger,
		sleep:     time.Sleep,
		randFloat: rand.Float64,
	}
}

// Run executes the preset loop and, if it is exhausted, the session
// fallback. It returns the feed body and true on the first success.
func (f *FeedFetcher) Run(ctx context.Context) (string, bool) {
	for i, preset := range f.presets {
		f.logger.Log("--- Method %d: Trying User-Agent: %s...", i+1, truncate(preset.UserAgent(), 50))

		result := f.AttemptWithPreset(ctx, f.feedURL, preset)
		f.report(result)

		if result.Success(f.cfg.MinBodyBytes) {
			f.logger.Log("SUCCESS! Got RSS content!")
			if f.finish(result, fmt.Sprintf("rss_success_%d.xml", i+1)) {
				return string(result.Body), true
			}
		}

		f.pause()
	}

	f.logger.Log("--- Method %d: Trying with session and cookies...", len(f.presets)+1)
	result := f.AttemptWithSession(ctx, f.feedURL)
	if result.Success(f.cfg.MinBodyBytes) {
		f.logger.Log("SUCCESS with session!")
		if f.finish(result, sessionOutputFile) {
			return string(result.Body), true
		}
	}

	f.logger.Log("All methods failed. The RSS feed is likely completely blocked.")
	return "", false
}

// AttemptWithPreset issues a single GET for targetURL on a fresh client
// carrying the preset's TLS fingerprint and headers.
func (f *FeedFetcher) AttemptWithPreset(ctx context.Context, targetURL string, preset HeaderPreset) FetchAttemptResult {
	proxy := f.proxies.Random()
	if proxy.Display != "" {
		f.logger.Log("Using proxy: %s", proxy.Display)
	}

	client, err := f.newClient(ClientOptions{
		Profile:        preset.TLSProfile,
		TimeoutSeconds: f.cfg.TimeoutSeconds,
		ProxyURL:       proxy.URL,
	})
	if err != nil {
		return FetchAttemptResult{Label: preset.Name, Err: fmt.Errorf("failed to create client: %w", err)}
	}

	req, err := preset.NewRequest(ctx, targetURL)
	if err != nil {
		return FetchAttemptResult{Label: preset.Name, Err: err}
	}

	return f.do(client, req, preset.Name)
}

// AttemptWithSession visits the site root on a cookie-jar client and then
// requests targetURL with the same client, so any cookies handed out on the
// first page go along with the feed request.
func (f *FeedFetcher) AttemptWithSession(ctx context.Context, targetURL string) FetchAttemptResult {
	const label = "session"

	proxy := f.proxies.Random()
	if proxy.Display != "" {
		f.logger.Log("Using proxy: %s", proxy.Display)
	}

	client, err := f.newClient(ClientOptions{
		Profile:        Chrome120Profile.TLSProfile,
		TimeoutSeconds: f.cfg.TimeoutSeconds,
		ProxyURL:       proxy.URL,
		WithJar:        true,
	})
	if err != nil {
		f.logger.Log("Session error: failed to create client: %v", err)
		return FetchAttemptResult{Label: label, Err: err}
	}

	homeReq, err := newNavigationRequest(ctx, Chrome120Profile, f.homeURL)
	if err != nil {
		f.logger.Log("Session error: %v", err)
		return FetchAttemptResult{Label: label, Err: err}
	}

	home := f.do(client, homeReq, label)
	if home.Err != nil {
		f.logger.Log("Session error: %v", home.Err)
		return home
	}
	f.logger.Log("Main page status: %d", home.StatusCode)

	sessionPreset := newPreset(label, Chrome120Profile.UserAgent, Chrome120Profile.TLSProfile)
	feedReq, err := sessionPreset.NewRequest(ctx, targetURL)
	if err != nil {
		f.logger.Log("Session error: %v", err)
		return FetchAttemptResult{Label: label, Err: err}
	}

	result := f.do(client, feedReq, label)
	if result.Err != nil {
		f.logger.Log("Session error: %v", result.Err)
		return result
	}
	f.logger.Log("RSS status: %d", result.StatusCode)
	f.logger.Log("RSS content length: %d", result.Length)
	if !result.Success(f.cfg.MinBodyBytes) {
		f.reportFailure(result)
	}
	return result
}

func (f *FeedFetcher) do(client HTTPDoer, req *http.Request, label string) FetchAttemptResult {
	resp, err := client.Do(req)
	if err != nil {
		return FetchAttemptResult{Label: label, Err: err}
	}
	defer resp.Body.Close()

	result := FetchAttemptResult{
		Label:      label,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}

	body, err := readResponseBody(resp)
	if err != nil {
		result.Err = fmt.Errorf("failed to read body: %w", err)
		return result
	}

	result.Body = body
	result.Length = len(body)
	result.Challenge = DetectChallenge(resp.StatusCode, resp.Header, string(body))
	return result
}

func (f *FeedFetcher) report(result FetchAttemptResult) {
	if result.Err != nil {
		f.logger.Log("Error: %v", result.Err)
		return
	}

	f.logger.Log("Status: %d", result.StatusCode)
	f.logger.Log("Content-Length: %d", result.Length)
	f.logger.Log("Headers: %s", formatHeaders(result.Header))

	if !result.Success(f.cfg.MinBodyBytes) {
		f.reportFailure(result)
	}
}

func (f *FeedFetcher) reportFailure(result FetchAttemptResult) {
	f.logger.Log("Failed: Status %d, Length %d", result.StatusCode, result.Length)
	if result.Challenge != "" {
		f.logger.Log("Block page detected: %s", result.Challenge)
	}
	if result.Length < previewLimit {
		f.logger.Log("Content preview: %s", truncate(string(result.Body), previewChars))
	}
}

// finish saves a successful body and logs a summary of the feed. A write
// failure turns the attempt into a failure.
func (f *FeedFetcher) finish(result FetchAttemptResult, name string) bool {
	path, err := f.save(name, result.Body)
	if err != nil {
		f.logger.Log("Error: %v", err)
		return false
	}
	f.logger.Log("Saved to %s", path)

	summary, err := SummarizeFeed(string(result.Body))
	if err != nil {
		f.logger.Log("Warning: %v", err)
	} else {
		f.logger.Log("Parsed %s", summary)
	}
	return true
}

func (f *FeedFetcher) save(name string, body []byte) (string, error) {
	dir := f.cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// pause waits a random duration in [DelayMin, DelayMax).
func (f *FeedFetcher) pause() {
	d := f.cfg.DelayMin
	if span := f.cfg.DelayMax - f.cfg.DelayMin; span > 0 {
		d += time.Duration(f.randFloat() * float64(span))
	}
	if d > 0 {
		f.sleep(d)
	}
}
