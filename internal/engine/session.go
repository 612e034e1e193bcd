package engine

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session is one play-through of a level. It is owned by a single Engine and
// is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	cfg          LevelConfig
	damage       float64
	score        int
	extinguished int
	fires        []*Fire
	ticket       *SuppressionTicket
	state        State
	nextID       int
	elapsed      float64
	tick         int

	spawner *SpawnScheduler
	log     *EventLog
	logger  *log.Logger
	pending []Event
}

func newSession(cfg LevelConfig, rng RandSource, logger *log.Logger, verbose bool) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		ID:     uuid.New(),
		cfg:    cfg,
		state:  StatePlaying,
		nextID: 1,
		log:    NewEventLog(verbose),
		logger: logger,
	}
	s.spawner = NewSpawnScheduler(cfg, rng)
	return s
}

// Config returns the level configuration of the session.
func (s *Session) Config() LevelConfig { return s.cfg }

// Level returns the level being played.
func (s *Session) Level() Level { return s.cfg.Level }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Damage returns the accumulated structural damage in [0, MaxDamage].
func (s *Session) Damage() float64 { return s.damage }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Extinguished returns how many fires have been put out by any means.
func (s *Session) Extinguished() int { return s.extinguished }

// Elapsed returns simulated seconds since the session started.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Tick returns the number of advanced frames.
func (s *Session) Tick() int { return s.tick }

// Fires returns the active fires in spawn order. The slice must not be modified.
func (s *Session) Fires() []*Fire { return s.fires }

// Ticket returns the armed suppression ticket, or nil.
func (s *Session) Ticket() *SuppressionTicket { return s.ticket }

// Log returns the session event log.
func (s *Session) Log() *EventLog { return s.log }

// Fire returns the active fire with the given id.
func (s *Session) Fire(id int) (*Fire, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.fires[i], true
	}
	return nil, false
}

func (s *Session) indexOf(id int) int {
	for i, f := range s.fires {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) remove(i int) *Fire {
	f := s.fires[i]
	s.fires = append(s.fires[:i], s.fires[i+1:]...)
	return f
}

// placeFire allocates the next id and appends a fire.
func (s *Session) placeFire(x, y, intensity float64, clicks int) *Fire {
	if clicks < 1 {
		clicks = 1
	}
	f := &Fire{
		ID:              s.nextID,
		X:               x,
		Y:               y,
		Intensity:       clampIntensity(intensity, s.cfg),
		ClicksRemaining: clicks,
		ClicksRequired:  clicks,
	}
	s.nextID++
	s.fires = append(s.fires, f)
	return f
}

// clearTicketFor drops the armed ticket if it references fireID.
func (s *Session) clearTicketFor(fireID int, reason string) {
	if s.ticket == nil || s.ticket.FireID != fireID {
		return
	}
	s.log.Add(s.tick, fireID, "ticket", "cleared", reason, float64(s.ticket.Remaining))
	s.ticket = nil
}
