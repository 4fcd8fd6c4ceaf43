package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/faves/assets"
	"github.com/MrSnakeDoc/faves/internal/catalog"
	"github.com/MrSnakeDoc/faves/internal/config"
	"github.com/MrSnakeDoc/faves/internal/httpserver"
	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/index"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/metrics"
	"github.com/MrSnakeDoc/faves/internal/redis"
	"github.com/MrSnakeDoc/faves/internal/scheduler"
	"github.com/MrSnakeDoc/faves/internal/site"
	redisstore "github.com/MrSnakeDoc/faves/internal/store/redis"
	"github.com/MrSnakeDoc/faves/internal/utils"
	"github.com/MrSnakeDoc/faves/internal/version"
)

// EmbeddedSource names the bundled assets in logs and /_/infra.
const EmbeddedSource = "embedded"

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	snapshot    *index.Snapshot
	reloader    *scheduler.CatalogReloader
}

// CatalogSource returns where categories are read from: the embedded set,
// or cfg.AssetsDir when configured.
func CatalogSource(cfg *config.Config) (catalog.Source, string) {
	if cfg.AssetsDir == "" {
		return catalog.Source{FS: assets.Categories(), Pattern: catalog.DefaultPattern}, EmbeddedSource
	}
	return catalog.Source{FS: os.DirFS(cfg.AssetsDir), Pattern: cfg.AssetsGlob}, cfg.AssetsDir
}

func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	loggerClient.Debug("configuration loaded", logger.String("config", fmt.Sprintf("%+v", cfg.Redacted())))

	settings, err := site.Resolve(cfg.SiteFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	m := metrics.New()
	snap := index.NewSnapshot()

	// Reloads only make sense when the catalog lives on disk.
	source, origin := CatalogSource(cfg)
	var reloadTrigger chan struct{}
	watchDir := ""
	if cfg.AssetsDir != "" {
		reloadTrigger = make(chan struct{}, 1)
		if cfg.Watch {
			watchDir = cfg.AssetsDir
		}
	}

	reloader := scheduler.NewCatalogReloader(source, snap, loggerClient, scheduler.ReloaderOptions{
		WatchDir:      watchDir,
		Debounce:      cfg.WatchDebounce,
		ManualTrigger: reloadTrigger,
		Metrics:       m,
	})

	// Redis is optional; when configured, fail fast if unavailable.
	var redisClient *goredis.Client
	var views deps.ViewCounter
	if cfg.RedisEnabled() {
		redisClient, err = redis.Connect(ctx, redis.Options{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		views = redisstore.NewStore(redisClient)
	} else {
		loggerClient.Info("redis not configured, view counters disabled")
	}

	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		RequestTimeout:   cfg.RequestTimeout,
		Snapshot:         snap,
		Site:             settings,
		Views:            views,
		RedisClient:      redisClient,
		Metrics:          m,
		ReloadTrigger:    reloadTrigger,
		AssetsSource:     origin,
		MaxSearchResults: cfg.MaxSearchResults,
		RateLimitBurst:   cfg.RateLimitBurst,
		RateLimitPerMin:  cfg.RateLimitPerMin,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg.ListenPort, d),
		redisClient: redisClient,
		snapshot:    snap,
		reloader:    reloader,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("🚀 Starting "+version.String(), logger.String("addr", a.cfg.ListenPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the catalog; invalid JSON is fatal here.
	if err := a.reloader.Start(ctx); err != nil {
		a.closeRedis()
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	defer a.reloader.Stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.closeRedis()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeRedis()
	a.logger.Info("✅ faves stopped cleanly")
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}
}
