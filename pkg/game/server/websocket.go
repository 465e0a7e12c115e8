package server

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/export"
)

// handleSocket upgrades to a websocket that sends the current view, then answers
// every action message with the new view or an error.
func (s *Server) handleSocket(c *gin.Context) {
	id := c.Param("id")
	sess, ok := s.get(id)
	if !ok {
		writeError(c, errSessionNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithField("session", id).WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := logrus.WithField("session", id)
	log.Debug("websocket opened")

	sess.mu.Lock()
	sess.touch(time.Now())
	err = conn.WriteJSON(export.NewView(sess.game.Board))
	sess.mu.Unlock()
	if err != nil {
		log.WithError(err).Debug("websocket write failed")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.WithError(err).Warn("websocket closed unexpectedly")
			}
			log.Debug("websocket closed")
			return
		}

		var reply any
		var req actionRequest
		if err := json.Unmarshal(data, &req); err != nil {
			reply = errorResponse{Error: "invalid message: " + err.Error()}
		} else if view, err := sess.apply(req); err != nil {
			reply = errorResponse{Error: err.Error()}
		} else {
			reply = view
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Debug("websocket write failed")
			return
		}
	}
}
