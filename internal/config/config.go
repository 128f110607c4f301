package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "Marsad"
	AppVersion = "1.0.0"
)

// Fallbacks holds the per-feed fallback string applied when a bilingual
// title resolves to empty in both languages. Fallback text is a feed-level
// concern, not a global default.
type Fallbacks struct {
	Home          string
	About         string
	AidEfforts    string
	Testimonials  string
	Organizations string
}

type Config struct {
	Addr          string
	DBPath        string
	DataDir       string
	MediaBaseURL  string
	CacheTTL      time.Duration
	RatePerSecond float64
	RateBurst     int
	Fallbacks     Fallbacks
}

func Load() Config {
	addr := os.Getenv("MARSAD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("MARSAD_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("MARSAD_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "marsad.db")
	}
	mediaBase := os.Getenv("MARSAD_MEDIA_BASE_URL")
	if mediaBase == "" {
		mediaBase = "http://localhost:8080"
	}

	return Config{
		Addr:          addr,
		DBPath:        filepath.Clean(path),
		DataDir:       filepath.Clean(dataDir),
		MediaBaseURL:  mediaBase,
		CacheTTL:      durationEnv("MARSAD_CACHE_TTL", 15*time.Minute),
		RatePerSecond: floatEnv("MARSAD_RATE_PER_SECOND", 20),
		RateBurst:     intEnv("MARSAD_RATE_BURST", 40),
		Fallbacks: Fallbacks{
			Home:          stringEnv("MARSAD_FALLBACK_HOME", "Marsad Archive"),
			About:         stringEnv("MARSAD_FALLBACK_ABOUT", "About"),
			AidEfforts:    stringEnv("MARSAD_FALLBACK_AID", "Aid Efforts"),
			Testimonials:  stringEnv("MARSAD_FALLBACK_TESTIMONIALS", "Testimony"),
			Organizations: stringEnv("MARSAD_FALLBACK_ORGANIZATIONS", "Organization"),
		},
	}
}

func stringEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intEnv(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func floatEnv(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}
