package stream

import (
	"time"

	"langton/pkg/api"
	"langton/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client relays one websocket viewer.
type Client struct {
	id      string
	conn    *websocket.Conn
	session *Session
	hub     *Broadcaster
	send    <-chan api.ServerMessage
	log     *logrus.Entry
}

func newClient(id string, conn *websocket.Conn, session *Session, hub *Broadcaster) *Client {
	return &Client{
		id:      id,
		conn:    conn,
		session: session,
		hub:     hub,
		send:    hub.Register(id),
		log:     logger.Log.WithField("client", id),
	}
}

// readPump forwards viewer commands to the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("close after read failed")
		}
		c.log.Info("viewer disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := c.session.Submit(c.id, api.ClientCommand{Action: api.ActionSnapshot}); err != nil {
		c.log.WithError(err).Warn("initial snapshot not queued")
	}

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("read failed")
			}
			return
		}
		if err := c.session.Submit(c.id, cmd); err != nil {
			c.hub.SendTo(c.id, api.ServerMessage{Type: api.TypeError, Error: err.Error()})
		}
	}
}

// writePump sends queued messages and keeps the connection alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("close after write failed")
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.WithError(err).Debug("write failed")
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
