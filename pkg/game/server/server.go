// Package server exposes minesweeper sessions over HTTP and websockets.
// Each session owns its own game behind its own lock; sessions never share state.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/state"
)

// Limits applied when Options leaves them unset
const (
	DefaultMaxCells   = 10000
	DefaultSessionTTL = time.Hour
)

// Options are the defaults for sessions created without explicit parameters
type Options struct {
	Width  int
	Height int
	Mines  int
	Seed   uint64

	// MaxCells caps width*height of a requested board
	MaxCells int
	// SessionTTL is how long a session may sit idle before it is expired
	SessionTTL time.Duration

	// NewPlacer builds the mine placer for a session seed. Defaults to a uniform placer.
	NewPlacer func(seed uint64) generator.Placer
}

// session is one game with its own lock. lastActive is guarded by mu.
type session struct {
	mu         sync.Mutex
	game       *state.Game
	created    time.Time
	lastActive time.Time
}

// touch records activity; the caller holds sess.mu
func (sess *session) touch(now time.Time) {
	sess.lastActive = now
}

// Server holds the sessions and the HTTP routes over them
type Server struct {
	opts     Options
	upgrader *websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a server with no sessions
func New(opts Options) *Server {
	if opts.NewPlacer == nil {
		opts.NewPlacer = func(seed uint64) generator.Placer {
			return generator.NewUniform(generator.NewSource(seed))
		}
	}
	if opts.MaxCells <= 0 {
		opts.MaxCells = DefaultMaxCells
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	return &Server{
		opts:     opts,
		upgrader: new(websocket.Upgrader),
		sessions: make(map[string]*session),
	}
}

// Router returns the gin engine serving the game routes
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	games := r.Group("/games")
	games.POST("", s.handleCreate)
	games.GET("/:id", s.handleGet)
	games.POST("/:id/actions", s.handleAction)
	games.DELETE("/:id", s.handleDelete)
	games.GET("/:id/ws", s.handleSocket)
	return r
}

// Run serves the routes on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.expireSessions(ctx)

	errc := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logrus.Info("server stopped")
	return nil
}

// add stores a new session and returns its id
func (s *Server) add(g *state.Game) string {
	id := uuid.New().String()
	now := time.Now()
	s.mu.Lock()
	s.sessions[id] = &session{game: g, created: now, lastActive: now}
	n := len(s.sessions)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"session":  id,
		"sessions": n,
	}).Info("session created")
	return id
}

func (s *Server) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) remove(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		logrus.WithFields(logrus.Fields{
			"session": id,
			"age":     time.Since(sess.created).Round(time.Second).String(),
		}).Info("session deleted")
	}
	return ok
}

// sweep removes sessions idle for longer than the TTL and returns how many went
func (s *Server) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastActive)
		sess.mu.Unlock()
		if idle <= s.opts.SessionTTL {
			continue
		}
		delete(s.sessions, id)
		n++
		logrus.WithFields(logrus.Fields{
			"session": id,
			"age":     now.Sub(sess.created).Round(time.Second).String(),
			"idle":    idle.Round(time.Second).String(),
		}).Info("session expired")
	}
	return n
}

// expireSessions sweeps idle sessions until ctx is cancelled
func (s *Server) expireSessions(ctx context.Context) {
	interval := s.opts.SessionTTL / 4
	if interval <= 0 {
		interval = s.opts.SessionTTL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

// requestLogger logs every request through logrus
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}
