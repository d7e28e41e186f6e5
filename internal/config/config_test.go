package config

import (
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "http://kiosk.local", want: []string{"http://kiosk.local"}},
		{name: "trimmed", raw: " http://a.test , ,http://b.test ", want: []string{"http://a.test", "http://b.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("parseOrigins(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("REGISTER_TEST_INT", "eight")
	if got := getEnvInt("REGISTER_TEST_INT", 8); got != 8 {
		t.Fatalf("getEnvInt = %d, want 8", got)
	}
	t.Setenv("REGISTER_TEST_INT", "12")
	if got := getEnvInt("REGISTER_TEST_INT", 8); got != 12 {
		t.Fatalf("getEnvInt = %d, want 12", got)
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("empty timezone should resolve to time.Local, got %v", loc)
	}

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("Location() = %v, %v; want UTC", loc, err)
	}

	cfg.Timezone = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestRateLimitKey(t *testing.T) {
	got := CacheKey.RateLimitKey("public", "10.0.0.1", 42)
	if got != "ratelimit:public:10.0.0.1:42" {
		t.Fatalf("RateLimitKey = %q", got)
	}
}
