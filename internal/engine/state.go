package engine

import "fmt"

// State is the lifecycle state of a session. Won and Lost are absorbing.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is Won or Lost.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = StatePlaying
	case "won":
		*s = StateWon
	case "lost":
		*s = StateLost
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

// evaluate moves a playing session to a terminal state when its conditions
// hold. Win is checked before loss so a final extinguish on the frame the
// structure gives out still counts.
func (s *Session) evaluate() {
	if s.state != StatePlaying {
		return
	}
	switch {
	case s.extinguished >= s.cfg.WinTarget:
		s.finish(StateWon)
	case s.damage >= MaxDamage:
		s.finish(StateLost)
	}
}

func (s *Session) finish(to State) {
	from := s.state
	s.state = to
	if s.ticket != nil {
		s.log.Add(s.tick, s.ticket.FireID, "ticket", "cleared", "session ended", float64(s.ticket.Remaining))
		s.ticket = nil
	}
	s.log.Add(s.tick, 0, "state", "change", fmt.Sprintf("%s → %s", from, to), s.damage)
	s.logger.Info("session finished", "session", s.ID, "state", to, "score", s.score,
		"extinguished", s.extinguished, "damage", fmt.Sprintf("%.1f", s.damage))

	switch to {
	case StateWon:
		s.emit(Event{Kind: EventWon, Score: s.score})
	case StateLost:
		s.emit(Event{Kind: EventLost, Score: s.score})
	}
}
