// Package devapi is an in-memory stand-in for the FadeApp backend. It serves
// the endpoints the client consumes so both can be run and tested together.
package devapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Kaleth2216/FadeApp/internal/audit"
)

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// RateLimit of zero disables the limiter.
	RateLimit rate.Limit
	Burst     int
	Audit     *audit.Dispatcher
	Now       func() time.Time
}

type Server struct {
	opts   Options
	store  *Store
	secret []byte
	engine *gin.Engine
}

func New(store *Store, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	s := &Server{
		opts:   opts,
		store:  store,
		secret: []byte(opts.JWTSecret),
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.registerRoutes(s.engine)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Store() *Store {
	return s.store
}
