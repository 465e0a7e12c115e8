package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/export"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/state"
)

// createRequest starts a game. Omitted fields take the server defaults.
type createRequest struct {
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
	Mines  *int    `json:"mines"`
	Seed   *uint64 `json:"seed"`
}

// createResponse carries the new session id and its first view
type createResponse struct {
	ID   string      `json:"id"`
	View export.View `json:"view"`
}

// actionRequest applies one tile action
type actionRequest struct {
	Action string `json:"action"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errSessionNotFound = errors.New("session not found")

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}

	width, height, mines, seed := s.opts.Width, s.opts.Height, s.opts.Mines, s.opts.Seed
	if req.Width != nil {
		width = *req.Width
	}
	if req.Height != nil {
		height = *req.Height
	}
	if req.Mines != nil {
		mines = *req.Mines
	}
	if req.Seed != nil {
		seed = *req.Seed
	}

	if err := s.checkSize(width, height, mines); err != nil {
		writeError(c, err)
		return
	}

	g, err := state.NewGame(width, height, mines, s.opts.NewPlacer(seed))
	if err != nil {
		writeError(c, err)
		return
	}
	id := s.add(g)
	c.JSON(http.StatusCreated, createResponse{ID: id, View: export.NewView(g.Board)})
}

// checkSize validates the board and holds it to the server's cell limit
func (s *Server) checkSize(width, height, mines int) error {
	if err := board.ValidateConfig(width, height, mines); err != nil {
		return err
	}
	if width*height > s.opts.MaxCells {
		return &board.ConfigurationError{
			Width:  width,
			Height: height,
			Mines:  mines,
			Reason: fmt.Sprintf("board exceeds the %d cell limit", s.opts.MaxCells),
		}
	}
	return nil
}

func (s *Server) handleGet(c *gin.Context) {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		writeError(c, errSessionNotFound)
		return
	}
	sess.mu.Lock()
	sess.touch(time.Now())
	view := export.NewView(sess.game.Board)
	sess.mu.Unlock()
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleAction(c *gin.Context) {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		writeError(c, errSessionNotFound)
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	view, err := sess.apply(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session": c.Param("id"),
			"action":  req.Action,
		}).WithError(err).Debug("action rejected")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDelete(c *gin.Context) {
	if !s.remove(c.Param("id")) {
		writeError(c, errSessionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// apply runs one action under the session lock and returns the resulting view
func (sess *session) apply(req actionRequest) (export.View, error) {
	action, ok := engineinput.ParseAction(req.Action)
	if !ok {
		return export.View{}, fmt.Errorf("%w: %q", gameplay.ErrUnknownAction, req.Action)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch(time.Now())
	if err := gameplay.Apply(sess.game, action, req.Col, req.Row); err != nil {
		return export.View{}, err
	}
	return export.NewView(sess.game.Board), nil
}

// writeError maps an error to its status code
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, board.ErrConfiguration),
		errors.Is(err, board.ErrOutOfRange),
		errors.Is(err, gameplay.ErrUnknownAction):
		status = http.StatusBadRequest
	default:
		logrus.WithError(err).Error("request failed")
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}
