package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// ErrUnknownMessage is reported for a command type the server does not know.
var ErrUnknownMessage = errors.New("unknown message type")

// playSession is the per-connection game: one engine, driven only from the
// connection's session goroutine.
type playSession struct {
	engine   *engine.Engine
	registry *Registry
	logger   *log.Logger
	out      func(ServerMessage)

	id    uuid.UUID
	entry *entry
}

func newPlaySession(reg *Registry, logger *log.Logger, out func(ServerMessage), opts ...engine.Option) *playSession {
	ps := &playSession{registry: reg, logger: logger, out: out}
	hooks := engine.Hooks{
		OnEvent: func(ev engine.Event) {
			ps.out(ServerMessage{Type: MsgEvent, Event: &ev})
		},
		OnWin: func(score int) {
			ps.out(ServerMessage{Type: MsgWon, Score: score})
		},
		OnLose: func() {
			ps.out(ServerMessage{Type: MsgLost})
		},
	}
	all := append([]engine.Option{engine.WithLogger(logger)}, opts...)
	all = append(all, engine.WithHooks(hooks))
	ps.engine = engine.New(all...)
	return ps
}

// handleRaw decodes one socket frame and applies it.
func (ps *playSession) handleRaw(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		ps.fail(fmt.Errorf("decode message: %w", err))
		return
	}
	ps.handle(msg)
}

func (ps *playSession) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgStart:
		ps.release()
		if err := ps.engine.Start(engine.Level(msg.Level)); err != nil {
			ps.fail(err)
			return
		}
		s, err := ps.engine.Session()
		if err != nil {
			ps.fail(err)
			return
		}
		ps.id = s.ID
		ps.entry = ps.registry.add(ps.id)
		ps.logger.Debug("session registered", "session", ps.id, "level", s.Level())

	case MsgClick:
		if !ps.engine.Running() {
			ps.fail(engine.ErrNoSession)
			return
		}
		ps.engine.OnFireClicked(msg.FireID)

	case MsgSuppress:
		if !ps.engine.Running() {
			ps.fail(engine.ErrNoSession)
			return
		}
		if msg.FireID == 0 {
			ps.engine.SuppressActive()
		} else {
			ps.engine.OnSuppressTriggered(msg.FireID)
		}

	case MsgStop:
		ps.close()
		return

	default:
		ps.fail(fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type))
		return
	}
	ps.publish()
}

// frame advances the session by wall time and pushes a snapshot while the
// session is still being played.
func (ps *playSession) frame(now time.Time) {
	if !ps.engine.Playing() {
		return
	}
	ps.engine.Frame(now)
	ps.publish()
}

func (ps *playSession) publish() {
	if ps.entry == nil || !ps.engine.Running() {
		return
	}
	sn := ps.engine.Snapshot()
	ps.entry.latest.Store(&sn)
	ps.out(ServerMessage{Type: MsgSnapshot, Snapshot: &sn})
}

func (ps *playSession) fail(err error) {
	ps.logger.Debug("command rejected", "session", ps.id, "err", err)
	ps.out(ServerMessage{Type: MsgError, Error: err.Error()})
}

func (ps *playSession) release() {
	if ps.entry == nil {
		return
	}
	ps.registry.remove(ps.id)
	ps.entry = nil
	ps.id = uuid.Nil
}

// close stops the engine and unregisters the session.
func (ps *playSession) close() {
	if ps.entry != nil {
		ps.logger.Info("session closed", "session", ps.id)
	}
	ps.engine.Stop()
	ps.release()
}
