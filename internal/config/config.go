package config

import (
	"os"
	"strconv"
	"strings"
)

// Env holds process-level settings. Database and mailer credentials are
// read by their own packages, mirroring how the rest of the env surface
// is consumed close to where it is used.
type Env struct {
	Port            string
	GinMode         string
	AdminCookieName string
	SiteOrigin      string
	RedisURL        string
	BookingRateMax  int // submissions per IP per minute on the public form, 0 disables
}

func LoadEnv() Env {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	cookieName := strings.TrimSpace(os.Getenv("ADMIN_COOKIE_NAME"))
	if cookieName == "" {
		cookieName = "rt_admin_token"
	}

	origin := strings.TrimSpace(os.Getenv("SITE_ORIGIN"))
	if origin == "" {
		origin = "http://localhost:" + port
	}

	rateMax := 0
	if v := strings.TrimSpace(os.Getenv("BOOKING_RATE_MAX")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateMax = n
		}
	}

	return Env{
		Port:            port,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		AdminCookieName: cookieName,
		SiteOrigin:      origin,
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		BookingRateMax:  rateMax,
	}
}
