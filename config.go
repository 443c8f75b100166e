package main

import (
	"os"
	"strconv"
	"time"
)

const (
	feedURL = "https://www.oddsshark.com/rss.xml"
	homeURL = "https://www.oddsshark.com"

	defaultMinBodyBytes   = 100
	defaultTimeoutSeconds = 10
	defaultDelayMin       = 1 * time.Second
	defaultDelayMax       = 3 * time.Second
	defaultLogFile        = "feedprobe.log"

	// previewLimit is the body size below which a failed response is previewed.
	previewLimit = 1000
	previewChars = 200
	resultChars  = 500

	sessionOutputFile = "rss_success_session.xml"
)

// Build-time variables - inject via ldflags
// Example: go build -ldflags "-X main.proxyFile=proxies.txt"
var (
	proxyFile string // -X main.proxyFile=...
)

// Config holds the tunables of a run. The target URL and the preset table
// are compiled in and cannot be changed here.
type Config struct {
	MinBodyBytes   int
	TimeoutSeconds int
	DelayMin       time.Duration
	DelayMax       time.Duration
	OutputDir      string
	LogFile        string
	ProxyFile      string
}

// DefaultConfig returns the values the probe was tuned with.
func DefaultConfig() Config {
	return Config{
		MinBodyBytes:   defaultMinBodyBytes,
		TimeoutSeconds: defaultTimeoutSeconds,
		DelayMin:       defaultDelayMin,
		DelayMax:       defaultDelayMax,
		OutputDir:      ".",
		LogFile:        defaultLogFile,
	}
}

// LoadConfig reads overrides from the environment. Call godotenv.Load first
// so a local .env file is honoured. Values that do not parse are reported in
// warnings and the default is kept.
func LoadConfig() (Config, []string) {
	cfg := DefaultConfig()
	var warnings []string

	intVar := func(key string, dst *int, min int) {
		raw := os.Getenv(key)
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < min {
			warnings = append(warnings, key+"="+raw+" is invalid, using "+strconv.Itoa(*dst))
			return
		}
		*dst = v
	}

	intVar("FEED_MIN_BYTES", &cfg.MinBodyBytes, 0)
	intVar("FEED_TIMEOUT_SECONDS", &cfg.TimeoutSeconds, 1)

	delayMin := int(cfg.DelayMin / time.Millisecond)
	delayMax := int(cfg.DelayMax / time.Millisecond)
	intVar("FEED_DELAY_MIN_MS", &delayMin, 0)
	intVar("FEED_DELAY_MAX_MS", &delayMax, 0)
	if delayMax < delayMin {
		warnings = append(warnings, "FEED_DELAY_MAX_MS is below FEED_DELAY_MIN_MS, using a fixed delay")
		delayMax = delayMin
	}
	cfg.DelayMin = time.Duration(delayMin) * time.Millisecond
	cfg.DelayMax = time.Duration(delayMax) * time.Millisecond

	if v := os.Getenv("FEED_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("FEED_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	cfg.ProxyFile = GetProxyFile()

	return cfg, warnings
}

// GetProxyFile returns the proxy list path (build-time or env fallback).
func GetProxyFile() string {
	if proxyFile != "" {
		return proxyFile
	}
	return os.Getenv("FEED_PROXY_FILE")
}
