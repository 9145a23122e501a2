package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/eduardo/initializr/internal/domain"
)

const basePath = "/spring-boot/generator"

// Server exposes the initializr service over HTTP.
type Server struct {
	svc    domain.InitializrServicePort
	logger *log.Logger
	engine *gin.Engine
}

func New(svc domain.InitializrServicePort, logger *log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{svc: svc, logger: logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger(logger))

	g := s.engine.Group(basePath)
	g.POST("", s.generate)
	g.GET("/download/:applicationName", s.download)
	g.GET("/projects", s.list)
	g.GET("/projects/:applicationName", s.show)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) generate(c *gin.Context) {
	var req GenerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure(err.Error()))
		return
	}

	cfg, err := req.Config()
	if err != nil {
		s.fail(c, err)
		return
	}

	record, err := s.svc.Generate(c.Request.Context(), cfg)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, success("Project Successfully Generated", toResponse(record)))
}

func (s *Server) download(c *gin.Context) {
	name := c.Param("applicationName")
	w := &attachmentWriter{c: c, filename: name + ".zip"}

	if err := s.svc.Download(c.Request.Context(), name, w); err != nil {
		if w.started {
			// headers are gone; all we can do is cut the body short
			s.logger.Error("download aborted", "application", name, "err", err)
			c.Abort()
			return
		}
		s.fail(c, err)
	}
}

func (s *Server) show(c *gin.Context) {
	record, err := s.svc.Find(c.Request.Context(), c.Param("applicationName"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, success("Project Found", toResponse(record)))
}

func (s *Server) list(c *gin.Context) {
	records, err := s.svc.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	out := make([]GenerateProjectResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	c.JSON(http.StatusOK, success("Projects Found", out))
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, failure(messageFor(err)))
}

// attachmentWriter commits the download headers on the first byte, so an
// error before any output can still be answered with a JSON envelope.
type attachmentWriter struct {
	c        *gin.Context
	filename string
	started  bool
}

func (w *attachmentWriter) Write(p []byte) (int, error) {
	if !w.started {
		w.started = true
		h := w.c.Writer.Header()
		h.Set("Content-Type", "application/octet-stream")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", w.filename))
		w.c.Status(http.StatusOK)
	}
	return w.c.Writer.Write(p)
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
