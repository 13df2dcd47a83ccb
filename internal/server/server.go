package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardflow/internal/auth"
	"cardflow/internal/config"
	"cardflow/internal/handler"
	"cardflow/internal/middleware"
	"cardflow/internal/repository"
	"cardflow/internal/store"
	"cardflow/internal/transfer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.Store
	Config *config.Config
	log    zerolog.Logger
}

// Init wires repositories, handlers and routes over an opened store.
func Init(cfg *config.Config, st *store.Store, log zerolog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := repository.New(st.DB)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r.Group("/api"), routeDeps{
		repos:    repos,
		tokens:   tokens,
		transfer: transfer.NewService(repos, log),
		store:    st,
	})

	return &Server{Engine: r, Store: st, Config: cfg, log: log}
}

type routeDeps struct {
	repos    *repository.Repositories
	tokens   *auth.TokenManager
	transfer *transfer.Service
	store    handler.Pinger
}

func registerRoutes(api *gin.RouterGroup, deps routeDeps) {
	userHandler := handler.NewUserHandler(deps.repos.Users, deps.tokens)
	workspaceHandler := handler.NewWorkspaceHandler(deps.repos)
	boardHandler := handler.NewBoardHandler(deps.repos)
	cardHandler := handler.NewCardHandler(deps.repos)
	linkHandler := handler.NewLinkHandler(deps.repos)
	searchHandler := handler.NewSearchHandler(deps.repos)
	transferHandler := handler.NewTransferHandler(deps.repos, deps.transfer)
	settingHandler := handler.NewSettingHandler(deps.repos.Settings)
	healthHandler := handler.NewHealthHandler(deps.store)

	// Public routes
	api.GET("/health", healthHandler.Health)
	api.POST("/auth/register", userHandler.Register)
	api.POST("/auth/login", userHandler.Login)

	authorized := api.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(deps.tokens))
	{
		authorized.GET("/auth/me", userHandler.Me)

		authorized.POST("/workspaces", workspaceHandler.Create)
		authorized.GET("/workspaces", workspaceHandler.GetAll)
		authorized.GET("/workspaces/:id", workspaceHandler.GetByID)
		authorized.PUT("/workspaces/:id", workspaceHandler.Update)
		authorized.DELETE("/workspaces/:id", workspaceHandler.Delete)

		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.GET("/boards/:id/kanban", boardHandler.Kanban)
		authorized.PUT("/boards/:id", boardHandler.Update)
		authorized.DELETE("/boards/:id", boardHandler.Delete)

		authorized.POST("/cards", cardHandler.Create)
		authorized.GET("/cards", cardHandler.GetAll)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.PUT("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)

		authorized.POST("/links", linkHandler.Create)
		authorized.GET("/links", linkHandler.GetAll)
		authorized.PUT("/links/:id", linkHandler.Update)
		authorized.DELETE("/links/:id", linkHandler.Delete)

		authorized.GET("/search", searchHandler.Search)
		authorized.GET("/export/:board_id", transferHandler.Export)
		authorized.POST("/import", transferHandler.Import)

		authorized.GET("/settings/:key", settingHandler.Get)
		authorized.PUT("/settings/:key", settingHandler.Put)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests for up to 5s.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("port", s.Config.ServerPort).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Info().Msg("server exited properly")
	return nil
}
