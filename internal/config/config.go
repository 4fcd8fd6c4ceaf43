package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AssetsDir     string        // load categories from this directory instead of the embedded set
	AssetsGlob    string        // doublestar pattern matched inside the assets directory
	Watch         bool          // reload when files under AssetsDir change (requires AssetsDir)
	WatchDebounce time.Duration // quiet period before a watched change is reloaded
	SiteFile      string        // optional YAML file overriding the embedded site settings

	MaxSearchResults int // 0 = no limit
	RateLimitBurst   int // search requests allowed in a burst per client IP
	RateLimitPerMin  int // search tokens refilled per client IP per minute

	// Redis (optional; enabled when RedisAddr is set)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict internal endpoints to specific Host headers
	AllowedCIDRS []string // optional, restrict internal endpoints to specific IPs (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FAVES_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FAVES_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("FAVES_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FAVES_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FAVES_PRETTY_LOG", false),

		// Assets
		AssetsDir:     getenv("FAVES_ASSETS_DIR", ""),
		AssetsGlob:    getenv("FAVES_ASSETS_GLOB", "*.json"),
		Watch:         mustBool("FAVES_WATCH", false),
		WatchDebounce: mustDuration("FAVES_WATCH_DEBOUNCE", 250*time.Millisecond),
		SiteFile:      getenv("FAVES_SITE_FILE", ""),

		// Search
		MaxSearchResults: getenvInt("FAVES_MAX_SEARCH_RESULTS", 50),
		RateLimitBurst:   getenvInt("FAVES_RATE_LIMIT_BURST", 20),
		RateLimitPerMin:  getenvInt("FAVES_RATE_LIMIT_PER_MIN", 60),

		// Redis settings
		RedisAddr: getenv("FAVES_REDIS_ADDR", ""),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("FAVES_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("FAVES_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("FAVES_TRUST_PROXY", false),
	}

	if cfg.RedisEnabled() {
		cfg.RedisUser = getenv("FAVES_REDIS_USERNAME", "default")
		cfg.RedisPasswordRequired = mustBool("FAVES_REDIS_PASSWORD_REQUIRED", true)
		cfg.RedisDB = requireEnvInt("FAVES_REDIS_DB")
		cfg.RedisDT = mustDuration("FAVES_REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("FAVES_REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("FAVES_REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("FAVES_REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("FAVES_REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("FAVES_REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("FAVES_REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("FAVES_REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisWarnThreshold = getenvInt("FAVES_REDIS_WARN_THRESHOLD", 3)

		if cfg.RedisPasswordRequired {
			cfg.RedisPassword = requireEnv("FAVES_REDIS_PASSWORD")
		} else {
			cfg.RedisPassword = getenv("FAVES_REDIS_PASSWORD", "")
		}
	}

	if cfg.Watch && cfg.AssetsDir == "" {
		panic("❌ FATAL: FAVES_WATCH=true requires FAVES_ASSETS_DIR")
	}

	return cfg
}

// RedisEnabled reports whether view counters are backed by Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := requireEnv(key)
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
