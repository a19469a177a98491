package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/inkpost/inkpost/internal/auth"
	"github.com/inkpost/inkpost/internal/config"
	"github.com/inkpost/inkpost/internal/graph"
	"github.com/inkpost/inkpost/internal/http/handlers"
	"github.com/inkpost/inkpost/internal/http/middlewares"
	"github.com/inkpost/inkpost/internal/observability"
	"github.com/inkpost/inkpost/internal/repo/mongodb"
)

const maxBodyBytes = 1 << 20 // 1 MiB is plenty for any query document

func NewRouter(log *slog.Logger, database *mongo.Database, cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware("inkpost"))
	}

	// metrics

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	prom := observability.NewProm(reg)
	r.Use(prom.GinHandleMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// health

	ping := func() error {
		if database == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return database.Client().Ping(ctx, readpref.Primary())
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up repositories and the schema

	usersRepo := mongodb.NewUsersRepo(database, prom)
	postsRepo := mongodb.NewPostsRepo(database, prom)
	categoriesRepo := mongodb.NewCategoriesRepo(database, prom)

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL())

	resolver := graph.NewResolver(graph.Deps{
		Users:      usersRepo,
		Posts:      postsRepo,
		Categories: categoriesRepo,
		JWT:        jwtManager,
		BcryptCost: cfg.BcryptCost,
		Log:        log,
		Prom:       prom,
	})

	schema := graph.MustNewSchema(resolver)

	r.POST("/graphql", middlewares.RequireJSON(), handlers.GraphQL(schema))
	r.GET("/playground", handlers.Playground)

	return r
}
