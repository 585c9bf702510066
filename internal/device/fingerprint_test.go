package device

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFingerprint_Stable(t *testing.T) {
	data := FingerprintData{
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0",
		AcceptHeaders:  "text/html",
		AcceptLanguage: "en-US",
		AcceptEncoding: "gzip",
	}

	first := GenerateFingerprint(data)
	second := GenerateFingerprint(data)

	assert.Equal(t, first, second, "same components must derive the same id")
	assert.Len(t, first, 64, "expected a hex-encoded sha256")
}

func TestGenerateFingerprint_DiffersPerComponent(t *testing.T) {
	base := FingerprintData{UserAgent: "ua", AcceptLanguage: "en"}
	other := base
	other.AcceptLanguage = "de"

	assert.NotEqual(t, GenerateFingerprint(base), GenerateFingerprint(other))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/device", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0")
	r.Header.Set("Accept-Language", "en-US")

	id := FromRequest(r)
	assert.Len(t, id, 64)
	assert.Equal(t, id, FromRequest(r), "repeated requests with the same headers map to the same device")
}

func TestNameFromUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"windows chrome", "Mozilla/5.0 (Windows NT 10.0; Win64) Chrome/120.0 Safari/537.36", "Windows - Chrome"},
		{"mac safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Version/17.0 Safari/605.1.15", "macOS - Safari"},
		{"linux firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Linux - Firefox"},
		{"windows edge", "Mozilla/5.0 (Windows NT 10.0; Win64) Chrome/120.0 Safari/537.36 Edg/120.0", "Windows - Edge"},
		{"android chrome", "Mozilla/5.0 (Linux; Android 14) Chrome/120.0 Mobile Safari/537.36", "Android - Chrome"},
		{"empty", "", "Unknown Device"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameFromUserAgent(tt.userAgent))
		})
	}
}
