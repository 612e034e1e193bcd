package server

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// servePlay runs one play connection until the client leaves, a write
// fails or ctx is cancelled. It is the only writer on ws.
func (s *Server) servePlay(ctx context.Context, ws *websocket.Conn) {
	defer ws.Close()

	done := make(chan struct{})
	defer close(done)
	frames := make(chan []byte, 16)
	readErr := make(chan error, 1)
	go readPump(ws, frames, readErr, done)

	var writeErr error
	ps := newPlaySession(s.registry, s.logger, func(m ServerMessage) {
		if writeErr != nil {
			return
		}
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			writeErr = err
			return
		}
		writeErr = ws.WriteJSON(m)
	}, s.engineOpts...)
	defer ps.close()

	frameTicker := time.NewTicker(time.Second / time.Duration(s.frameRate))
	defer frameTicker.Stop()
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("play socket read", "err", err)
			}
			return
		case data := <-frames:
			ps.handleRaw(data)
		case now := <-frameTicker.C:
			ps.frame(now)
		case <-pingTicker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.logger.Debug("ping failed", "err", err)
				return
			}
		}
		if writeErr != nil {
			s.logger.Debug("play socket write", "err", writeErr)
			return
		}
	}
}

func readPump(ws *websocket.Conn, frames chan<- []byte, errc chan<- error, done <-chan struct{}) {
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		select {
		case frames <- data:
		case <-done:
			return
		}
	}
}
