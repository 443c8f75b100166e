package main

import (
	"strings"

	http "github.com/bogdanfinn/fhttp"
)

// Block page vendors recognised by DetectChallenge.
const (
	ChallengeAWSWAF     = "aws-waf"
	ChallengeDataDome   = "datadome"
	ChallengeIncapsula  = "incapsula"
	ChallengeCloudflare = "cloudflare"
)

// IsAWSWAFChallenge detects the AWS WAF challenge or block response.
// A challenge carries x-amzn-waf-action; a hard block is usually a 403 with
// the awswaf script or an empty body.
func IsAWSWAFChallenge(statusCode int, header http.Header, body string) bool {
	if header.Get("x-amzn-waf-action") != "" {
		return true
	}
	if statusCode == 202 || statusCode == 403 || statusCode == 405 {
		return strings.Contains(body, "awswaf") || strings.Contains(body, "AwsWafIntegration")
	}
	return false
}

func IsDataDomeInterstitial(statusCode int, body string) bool {
	return statusCode == 403 && strings.Contains(body, "captcha-delivery.com")
}

func IsReese84Challenge(body string) bool {
	return strings.Contains(body, "Pardon Our Interruption") || strings.Contains(body, "Incapsula_Resource")
}

func IsCloudflareChallenge(statusCode int, header http.Header, body string) bool {
	if header.Get("cf-mitigated") == "challenge" {
		return true
	}
	return (statusCode == 403 || statusCode == 503) && strings.Contains(body, "challenge-platform")
}

// DetectChallenge names the anti-bot vendor whose block page this response
// looks like, or "" if none matches. It only feeds diagnostics.
func DetectChallenge(statusCode int, header http.Header, body string) string {
	switch {
	case IsAWSWAFChallenge(statusCode, header, body):
		return ChallengeAWSWAF
	case IsDataDomeInterstitial(statusCode, body):
		return ChallengeDataDome
	case IsReese84Challenge(body):
		return ChallengeIncapsula
	case IsCloudflareChallenge(statusCode, header, body):
		return ChallengeCloudflare
	}
	return ""
}
