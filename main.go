package main

import (
	"context"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, warnings := LoadConfig()

	stdLog, logFile := setupLogging(cfg.LogFile)
	defer logFile.Close()

	logger := newRunLogger(&stdLogger{logger: stdLog})
	for _, w := range warnings {
		logger.Log("Config warning: %s", w)
	}

	proxies := loadProxies(cfg.ProxyFile, logger)

	logger.Log("Fetching %s (min body %d bytes, timeout %ds, delay %v-%v)",
		feedURL, cfg.MinBodyBytes, cfg.TimeoutSeconds, cfg.DelayMin, cfg.DelayMax)

	fetcher := NewFeedFetcher(cfg, NewClientFactory(nil), proxies, logger)
	result, ok := fetcher.Run(context.Background())
	if ok {
		logger.Log("RSS Content (first %d chars):\n%s", resultChars, truncate(result, resultChars))
	} else {
		logger.Log("Could not access the RSS feed. It's blocked by AWS WAF.")
	}
}

// loadProxies returns nil (direct connections) when no proxy file is
// configured or it cannot be used.
func loadProxies(filename string, logger Logger) *ProxyPool {
	if filename == "" {
		return nil
	}

	pool, skipped, err := LoadProxyPool(filename)
	if err != nil {
		logger.Log("Failed to load proxies, connecting directly: %v", err)
		return nil
	}
	if skipped > 0 {
		logger.Log("Skipped %d malformed proxy lines", skipped)
	}
	logger.Log("Loaded %d proxies", pool.Count())
	return pool
}
