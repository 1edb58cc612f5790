// Package server provides the calculator's REST API.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zephyrtronium/scicalc"
	"gopkg.in/tylerb/graceful.v1"
)

// customized via build flags
var (
	Version = "development"
	GitHash = "unknown"
)

// Server instance
type Server struct {
	Config Config

	shutdownTimeout time.Duration
	opts            []scicalc.Option

	sessions *sessions
}

// NewServer creates a server with the default configuration.
func NewServer() *Server {
	s := new(Server)
	s.Config.ListenAddress = DefaultListenAddress
	s.Config.ShutdownTimeout = DefaultShutdownTimeout
	s.Config.HistoryLimit = DefaultHistoryLimit
	s.sessions = newSessions()
	return s
}

// Prepare applies the configuration. It must be called after the
// configuration is changed and before the server handles requests.
func (s *Server) Prepare() (err error) {
	if s.shutdownTimeout, err = s.Config.getShutdownTimeout(); err != nil {
		return err
	}
	if s.Config.HistoryLimit < 0 {
		return fmt.Errorf("history limit %d is negative", s.Config.HistoryLimit)
	}
	s.opts = s.Config.options()

	// automatic debug mode
	if len(s.Config.Logging) == 0 && s.Config.DebugMode {
		s.Config.Logging = "debug"
		if _, ok := s.Config.LoggingOptions[s.Config.Logging]; !ok {
			if s.Config.LoggingOptions == nil {
				s.Config.LoggingOptions = make(map[string]map[string]string)
			}
			s.Config.LoggingOptions[s.Config.Logging] = makeDefaultLoggingOptions("debug")
		}
	}

	// logging levels
	if len(s.Config.Logging) > 0 {
		cfg, ok := s.Config.LoggingOptions[s.Config.Logging]
		if !ok {
			return fmt.Errorf("no valid logging options found for '%s'", s.Config.Logging)
		}
		for key, val := range cfg {
			if err := setLoggingLevel(key, val); err != nil {
				return fmt.Errorf("failed to apply logging level for '%s': %s", key, err)
			}
		}
	}

	return nil // OK
}

// Router creates the HTTP handler with all the API endpoints.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// /version API endpoint (without logging)
	router.GET("/version", s.DoVersion)

	router.Use(func(ctx *gin.Context) {
		beg := time.Now()
		path := ctx.Request.URL.Path
		method := ctx.Request.Method

		ctx.Next() // do actual processing

		log.WithFields(map[string]interface{}{
			"status":  ctx.Writer.Status(),
			"client":  ctx.ClientIP(),
			"request": ctx.Request.URL,
			"latency": time.Since(beg),
		}).Infof("[%s]: %s %s", CORE, method, path)
	})
	router.Use(gin.Recovery())

	router.GET("/evaluate", s.DoEvaluate)
	router.POST("/evaluate", s.DoEvaluate)
	router.GET("/validate", s.DoValidate)
	router.GET("/func/:name", s.DoFunc)
	router.GET("/format", s.DoFormat)

	router.POST("/session/:id/actions", s.DoSessionActions)
	router.GET("/session/:id", s.DoSessionGet)
	router.DELETE("/session/:id", s.DoSessionDelete)
	router.GET("/session/:id/history", s.DoSessionHistory)

	router.GET("/logging/level", s.DoLoggingLevel)

	return router
}

// DoVersion handles the /version endpoint.
func (s *Server) DoVersion(ctx *gin.Context) {
	info := map[string]interface{}{
		"version":  Version,
		"git-hash": GitHash,
	}
	writeResponse(ctx, http.StatusOK, info)
}

// ListenAndServe serves HTTP on the configured address until the process is
// interrupted, then waits for active requests up to the shutdown timeout.
func (s *Server) ListenAndServe() error {
	if !s.Config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	log.WithFields(map[string]interface{}{
		"version":  Version,
		"git-hash": GitHash,
	}).Info("starting server...")
	log.WithFields(map[string]interface{}{
		"address":          s.Config.ListenAddress,
		"logging":          s.Config.Logging,
		"shutdown-timeout": s.shutdownTimeout,
		"history-limit":    s.Config.HistoryLimit,
		"degrees":          s.Config.Degrees,
		"right-assoc-pow":  s.Config.RightAssocPow,
		"lenient-brackets": s.Config.LenientBrackets,
	}).Info("main configuration")

	worker := &graceful.Server{
		Timeout: s.shutdownTimeout,
		Server: &http.Server{
			Addr:    s.Config.ListenAddress,
			Handler: s.Router(),
		},
	}
	if err := worker.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to listen on %q: %s", s.Config.ListenAddress, err)
	}

	log.Info("server stopped")
	return nil // OK
}
