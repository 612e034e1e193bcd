// Package server exposes the engine over HTTP: a websocket play endpoint
// with one session per connection, plus read-only session listings.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/logging"
)

// Options configures a Server.
type Options struct {
	FrameRate     int // session frames per second, default 30
	Logger        *log.Logger
	EngineOptions []engine.Option // appended to every play session
	Mode          string          // gin mode, default release
}

type Server struct {
	router     *gin.Engine
	registry   *Registry
	logger     *log.Logger
	upgrader   websocket.Upgrader
	frameRate  int
	engineOpts []engine.Option

	// base is cancelled on shutdown so hijacked play sockets exit.
	base   context.Context
	cancel context.CancelFunc
	conns  sync.WaitGroup
}

func New(opts Options) *Server {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Mode == "" {
		opts.Mode = gin.ReleaseMode
	}
	gin.SetMode(opts.Mode)

	base, cancel := context.WithCancel(context.Background())
	s := &Server{
		router:     gin.New(),
		registry:   NewRegistry(),
		logger:     opts.Logger,
		frameRate:  opts.FrameRate,
		engineOpts: opts.EngineOptions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		base:   base,
		cancel: cancel,
	}
	s.router.Use(gin.Recovery(), s.requestLog())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.registry.Len()})
	})
	s.router.GET("/levels", s.listLevels)
	s.router.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.registry.List())
	})
	s.router.GET("/sessions/:id", s.getSession)
	s.router.GET("/ws", s.play)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}

func (s *Server) listLevels(c *gin.Context) {
	levels := engine.Levels()
	out := make([]engine.LevelConfig, 0, len(levels))
	for _, l := range levels {
		cfg, err := engine.ConfigFor(l)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, cfg)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	sn, ok := s.registry.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, sn)
}

func (s *Server) play(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	s.conns.Add(1)
	defer s.conns.Done()
	s.servePlay(s.base, ws)
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Registry() *Registry {
	return s.registry
}

// Run serves on addr until ctx is cancelled, then closes play sockets and
// drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.cancel()
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.cancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.conns.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
