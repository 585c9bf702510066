// Package device implements the device fingerprint contract: a best-effort,
// pseudo-stable identifier for a browser/device pairing plus a human-readable
// descriptor derived from the User-Agent.
//
// The identifier is a convenience control against casual account sharing,
// not a security boundary. Clients can fabricate or reset it, and the auth
// service never relies on its uniqueness or stability as an invariant.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// FingerprintData contains the request components combined into a
// device fingerprint.
type FingerprintData struct {
	UserAgent      string
	AcceptHeaders  string
	AcceptLanguage string
	AcceptEncoding string
}

// GenerateFingerprint derives a device identifier from the given components.
// The result is the hex-encoded SHA-256 of the joined fields, matching the
// shape clients produce for themselves; identical inputs yield identical ids.
func GenerateFingerprint(data FingerprintData) string {
	combined := strings.Join([]string{
		data.UserAgent,
		data.AcceptHeaders,
		data.AcceptLanguage,
		data.AcceptEncoding,
	}, "|")

	sum := sha256.Sum256([]byte(combined))

	return hex.EncodeToString(sum[:])
}

// FromRequest extracts fingerprint components from an HTTP request and
// returns the derived device id. Used by the fingerprint helper endpoint for
// clients that do not compute their own identifier.
func FromRequest(r *http.Request) string {
	return GenerateFingerprint(FingerprintData{
		UserAgent:      r.UserAgent(),
		AcceptHeaders:  r.Header.Get("Accept"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		AcceptEncoding: r.Header.Get("Accept-Encoding"),
	})
}

// NameFromUserAgent builds an "OS - Browser" descriptor from a User-Agent
// string. Purely informational; never used for authorization decisions.
func NameFromUserAgent(userAgent string) string {
	if userAgent == "" {
		return "Unknown Device"
	}

	os := "Unknown OS"
	switch {
	case strings.Contains(userAgent, "Android"):
		os = "Android"
	case strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"):
		os = "iOS"
	case strings.Contains(userAgent, "Win"):
		os = "Windows"
	case strings.Contains(userAgent, "Mac"):
		os = "macOS"
	case strings.Contains(userAgent, "Linux"):
		os = "Linux"
	}

	browser := "Unknown Browser"
	switch {
	case strings.Contains(userAgent, "Edg"):
		browser = "Edge"
	case strings.Contains(userAgent, "Firefox"):
		browser = "Firefox"
	case strings.Contains(userAgent, "Chrome"):
		browser = "Chrome"
	case strings.Contains(userAgent, "Safari"):
		browser = "Safari"
	}

	return os + " - " + browser
}
