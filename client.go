package main

import (
	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// HTTPDoer is the part of tls_client.HttpClient the fetcher relies on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOptions describes one client instance.
type ClientOptions struct {
	Profile        profiles.ClientProfile
	TimeoutSeconds int
	ProxyURL       string
	// WithJar keeps cookies between requests made by the same client.
	WithJar bool
}

// ClientFactory creates a client for a single attempt or session.
type ClientFactory func(opts ClientOptions) (HTTPDoer, error)

// NewClientFactory returns a factory backed by tls-client.
func NewClientFactory(logger tls_client.Logger) ClientFactory {
	return func(opts ClientOptions) (HTTPDoer, error) {
		return NewClient(logger, opts)
	}
}

func NewClient(logger tls_client.Logger, opts ClientOptions) (tls_client.HttpClient, error) {
	if logger == nil {
		logger = tls_client.NewNoopLogger()
	}

	timeout := opts.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeout),
		tls_client.WithClientProfile(opts.Profile),
		tls_client.WithRandomTLSExtensionOrder(),
	}

	if opts.WithJar {
		options = append(options, tls_client.WithCookieJar(tls_client.NewCookieJar()))
	}

	if opts.ProxyURL != "" {
		options = append(options, tls_client.WithProxyUrl(opts.ProxyURL))
	}

	return tls_client.NewHttpClient(logger, options...)
}
