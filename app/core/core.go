package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gorlea-ink/gorlea/app/core/srv"
	"github.com/gorlea-ink/gorlea/app/store/sqlstore"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/journal"
	"github.com/gorlea-ink/gorlea/pkg/object-storage/s3"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	httpEngine *gin.Engine

	cache      types.Cache
	entryCache *journal.Cache
	fileStore  *s3.S3

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("gorlea", "core"),
		httpEngine: gin.New(),
		cache:      newRedisCache(cfg.Redis),
		entryCache: journal.NewCache(),
	}

	setupSqlStore(core)

	if cfg.ObjectStorage.Driver == "s3" && cfg.ObjectStorage.S3 != nil {
		s3cfg := cfg.ObjectStorage.S3
		core.fileStore = s3.NewS3Client(s3cfg.Endpoint, s3cfg.Region, s3cfg.Bucket, s3cfg.AccessKey, s3cfg.SecretKey)
	}

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI))

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
	slog.Info("sql store ready")
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

// PoetPrompt returns the configured persona override or the built-in one.
func (s *Core) PoetPrompt() string {
	if s.cfg.Prompt.Poet != "" {
		return s.cfg.Prompt.Poet
	}
	return ai.GORLEA_SYSTEM_PROMPT
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Cache() types.Cache {
	return s.cache
}

// EntryCache holds each user's full listing so filter and search work off
// one warm copy.
func (s *Core) EntryCache() *journal.Cache {
	return s.entryCache
}

// FileStore is nil when no object storage is configured. Audio archiving
// is skipped in that case.
func (s *Core) FileStore() *s3.S3 {
	return s.fileStore
}
