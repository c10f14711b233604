package http

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseIntDefault(t *testing.T) {
	if got := parseIntDefault("", 20); got != 20 {
		t.Fatalf("empty = %d", got)
	}
	if got := parseIntDefault("7", 20); got != 7 {
		t.Fatalf("7 = %d", got)
	}
	if got := parseIntDefault("junk", 20); got != 20 {
		t.Fatalf("junk = %d", got)
	}
}

func TestParseBoolFilter(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "1": true, "TRUE": true, "false": false, "0": false} {
		got := parseBoolFilter(raw)
		if got == nil || *got != want {
			t.Errorf("parseBoolFilter(%q) = %v, want %v", raw, got, want)
		}
	}
	for _, raw := range []string{"", "yes", "maybe"} {
		if got := parseBoolFilter(raw); got != nil {
			t.Errorf("parseBoolFilter(%q) = %v, want nil", raw, *got)
		}
	}
}

func TestReadIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.9:54321"
	if got := readIP(r); got != "203.0.113.9" {
		t.Fatalf("remote addr: got %q", got)
	}

	r.Header.Set("X-Forwarded-For", " 198.51.100.7 , 10.0.0.1")
	if got := readIP(r); got != "198.51.100.7" {
		t.Fatalf("forwarded: got %q", got)
	}
}

func TestDecodeBodyRejectsUnknownAndTrailing(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	var dst payload
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com"}`))
	if err := decodeBody(r, &dst); err != nil {
		t.Fatalf("decodeBody: %v", err)
	}
	if dst.Email != "a@b.com" {
		t.Fatalf("Email = %q", dst.Email)
	}

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","extra":1}`))
	if err := decodeBody(r, &payload{}); err == nil {
		t.Fatal("unknown fields must be rejected")
	}

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com"}{"email":"c@d.com"}`))
	if err := decodeBody(r, &payload{}); err == nil {
		t.Fatal("trailing JSON values must be rejected")
	}
}
