package engine

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoSession is returned when an operation needs a running session.
var ErrNoSession = errors.New("no session running")

// Hooks receive engine output. Any of them may be nil. They are called on the
// engine's goroutine after the operation that produced them has completed.
type Hooks struct {
	OnWin   func(score int)
	OnLose  func()
	OnScore func(score int)
	OnEvent func(Event)
}

// Engine drives one session at a time. It is single-threaded: every frame and
// input must come from the same goroutine.
type Engine struct {
	logger  *log.Logger
	rng     RandSource
	hooks   Hooks
	verbose bool

	clock   Clock
	session *Session
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand injects the random source used for spawns.
func WithRand(r RandSource) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithHooks installs output hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithVerbose records per-tick entries in the session event log.
func WithVerbose(v bool) Option {
	return func(e *Engine) {
		e.verbose = v
	}
}

// New creates an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- gameplay randomness
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SetHooks replaces the output hooks.
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Start discards any current session and begins a fresh one on level.
func (e *Engine) Start(level Level) error {
	cfg, err := ConfigFor(level)
	if err != nil {
		return err
	}
	e.session = newSession(cfg, e.rng, e.logger, e.verbose)
	e.clock.Reset()
	e.logger.Info("session started", "session", e.session.ID, "level", level)
	return nil
}

// Stop halts and discards the current session.
func (e *Engine) Stop() {
	if e.session == nil {
		return
	}
	e.logger.Debug("session stopped", "session", e.session.ID, "state", e.session.state)
	e.session = nil
	e.clock.Reset()
}

// Running reports whether a session exists, terminal or not.
func (e *Engine) Running() bool {
	return e.session != nil
}

// Playing reports whether a session exists and is still in play.
func (e *Engine) Playing() bool {
	return e.session != nil && e.session.state == StatePlaying
}

// Session returns the current session.
func (e *Engine) Session() (*Session, error) {
	if e.session == nil {
		return nil, ErrNoSession
	}
	return e.session, nil
}

// Frame advances the session by the wall time elapsed since the previous frame.
func (e *Engine) Frame(now time.Time) {
	if !e.Playing() {
		return
	}
	e.step(e.clock.Delta(now))
}

// Step advances the session by dt seconds without consulting the clock.
func (e *Engine) Step(dt float64) {
	if !e.Playing() {
		return
	}
	e.step(dt)
}

func (e *Engine) step(dt float64) {
	s := e.session
	s.Update(dt)
	e.dispatch(s)
}

// OnFireClicked lands one click on a fire.
func (e *Engine) OnFireClicked(id int) ClickResult {
	if e.session == nil {
		e.logger.Debug("click without session", "fire_id", id)
		return ClickResult{FireID: id}
	}
	s := e.session
	res := s.Click(id)
	e.dispatch(s)
	return res
}

// OnSuppressTriggered suppresses a fire by id.
func (e *Engine) OnSuppressTriggered(id int) SuppressResult {
	if e.session == nil {
		e.logger.Debug("suppress without session", "fire_id", id)
		return SuppressResult{FireID: id, Trigger: TriggerManual}
	}
	s := e.session
	res := s.Suppress(id, TriggerManual)
	e.dispatch(s)
	return res
}

// SuppressActive suppresses the fire referenced by the armed ticket.
func (e *Engine) SuppressActive() SuppressResult {
	if e.session == nil || e.session.ticket == nil {
		e.logger.Debug("suppress without ticket")
		return SuppressResult{Trigger: TriggerManual}
	}
	return e.OnSuppressTriggered(e.session.ticket.FireID)
}

// Snapshot returns the current session view, or the zero Snapshot when idle.
func (e *Engine) Snapshot() Snapshot {
	if e.session == nil {
		return Snapshot{}
	}
	return e.session.Snapshot()
}

// Log returns the event log of the current session, or nil when idle.
func (e *Engine) Log() *EventLog {
	if e.session == nil {
		return nil
	}
	return e.session.log
}

// dispatch delivers queued session events to the hooks. Hooks may call back
// into the engine, including Stop and Start.
func (e *Engine) dispatch(s *Session) {
	for _, ev := range s.Drain() {
		if e.hooks.OnEvent != nil {
			e.hooks.OnEvent(ev)
		}
		switch ev.Kind {
		case EventWon:
			if e.hooks.OnScore != nil {
				e.hooks.OnScore(ev.Score)
			}
			if e.hooks.OnWin != nil {
				e.hooks.OnWin(ev.Score)
			}
		case EventLost:
			if e.hooks.OnLose != nil {
				e.hooks.OnLose()
			}
		}
	}
}
