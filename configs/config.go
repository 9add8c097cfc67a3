package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether every credential needed for uploads is present.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != "" && r.PublicURL != ""
}

type Config struct {
	ListenAddr        string
	APIURL            string
	UnsplashAccessKey string
	UnsplashAPIURL    string
	GoogleMapsAPIKey  string
	SecretKey         string
	CookieName        string
	CookieSecure      bool
	Timezone          string
	RedisURI          string
	ViewTTL           time.Duration
	R2                R2
}

func LoadConfig() *Config {
	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":5173"),
		APIURL:            getEnv("API_URL", "http://localhost:3000"),
		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
		UnsplashAPIURL:    getEnv("UNSPLASH_API_URL", "https://api.unsplash.com"),
		GoogleMapsAPIKey:  getEnv("GOOGLE_MAPS_API_KEY", ""),
		SecretKey:         getEnv("SECRET_KEY", ""),
		CookieName:        getEnv("COOKIE_NAME", "authToken"),
		CookieSecure:      getBool("COOKIE_SECURE", false),
		Timezone:          getEnv("TIMEZONE", "UTC"),
		RedisURI:          getEnv("REDIS_URI", ""),
		ViewTTL:           getDuration("VIEW_TTL", 2*time.Hour),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

// Validate checks the options that would otherwise fail on the first request.
func (c *Config) Validate() error {
	switch len(c.SecretKey) {
	case 16, 24, 32:
	default:
		return errors.New("SECRET_KEY must be 16, 24 or 32 bytes long")
	}
	if c.APIURL == "" {
		return errors.New("API_URL is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ViewTTL <= 0 {
		return errors.New("VIEW_TTL must be positive")
	}
	return nil
}

// Location resolves Timezone, the zone used to display and enter scheduled times.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
