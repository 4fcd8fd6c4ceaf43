package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/faves/internal/index"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/metrics"
	"github.com/MrSnakeDoc/faves/internal/site"
)

// ViewCounter counts category page views. Implementations must be safe for
// concurrent use.
type ViewCounter interface {
	IncrementViews(ctx context.Context, category string) (int64, error)
	GetViews(ctx context.Context) (map[string]int64, error)
}

type Deps struct {
	Logger           logger.Logger
	StartTime        time.Time
	Version          string
	Commit           string
	BuildDate        string
	GoVersion        string
	AllowedHosts     []string         // Host headers allowed to access internal endpoints
	AllowedCIDRS     []string         // IPs allowed to access internal endpoints
	TrustProxy       bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RequestTimeout   time.Duration    // per-request timeout
	Snapshot         *index.Snapshot  // current catalog
	Site             *site.Settings   // page texts and footer links
	Views            ViewCounter      // nil when Redis is disabled
	RedisClient      *redis.Client    // nil when Redis is disabled
	Metrics          *metrics.Metrics // nil disables metrics
	ReloadTrigger    chan struct{}    // manual catalog reload; nil when reloads are disabled
	AssetsSource     string           // "embedded" or the assets directory
	MaxSearchResults int              // 0 = no limit
	RateLimitBurst   int
	RateLimitPerMin  int
}
