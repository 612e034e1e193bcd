package engine

import "fmt"

// EventKind identifies a side effect emitted by a session.
type EventKind int

const (
	EventFireSpawned EventKind = iota
	EventFireHit
	EventFireExtinguished
	EventFireSuppressed
	EventTicketArmed
	EventTicketReplaced
	EventTicketExpired
	EventWon
	EventLost
)

var eventKindNames = [...]string{
	EventFireSpawned:      "fire_spawned",
	EventFireHit:          "fire_hit",
	EventFireExtinguished: "fire_extinguished",
	EventFireSuppressed:   "fire_suppressed",
	EventTicketArmed:      "ticket_armed",
	EventTicketReplaced:   "ticket_replaced",
	EventTicketExpired:    "ticket_expired",
	EventWon:              "won",
	EventLost:             "lost",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(b []byte) error {
	for i, name := range eventKindNames {
		if name == string(b) {
			*k = EventKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", b)
}

// Trigger records what caused a suppression.
type Trigger int

const (
	TriggerNone   Trigger = iota
	TriggerManual         // player pressed the suppress control
	TriggerAuto           // the ticket countdown expired
)

func (t Trigger) String() string {
	switch t {
	case TriggerManual:
		return "manual"
	case TriggerAuto:
		return "auto"
	default:
		return "none"
	}
}

func (t Trigger) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Trigger) UnmarshalText(b []byte) error {
	switch string(b) {
	case "manual":
		*t = TriggerManual
	case "auto":
		*t = TriggerAuto
	case "none", "":
		*t = TriggerNone
	default:
		return fmt.Errorf("unknown trigger %q", b)
	}
	return nil
}

// Event is a stateless notification for audio and visual feedback. Frontends
// react to events but never feed them back into the engine.
type Event struct {
	Kind      EventKind `json:"kind"`
	Tick      int       `json:"tick"`
	Elapsed   float64   `json:"elapsed"`
	FireID    int       `json:"fire_id,omitempty"`
	X         float64   `json:"x,omitempty"`
	Y         float64   `json:"y,omitempty"`
	Intensity float64   `json:"intensity,omitempty"`
	Points    int       `json:"points,omitempty"`
	Score     int       `json:"score"`
	Trigger   Trigger   `json:"trigger,omitempty"`
	Remaining int       `json:"remaining,omitempty"` // clicks or ticket seconds, by kind
}

func (e Event) String() string {
	return fmt.Sprintf("%s fire=%d points=%d score=%d", e.Kind, e.FireID, e.Points, e.Score)
}

// emit stamps and queues an event for the owning engine to dispatch.
func (s *Session) emit(ev Event) {
	ev.Tick = s.tick
	ev.Elapsed = s.elapsed
	ev.Score = s.score
	s.pending = append(s.pending, ev)
}

// Drain returns and clears the queued events.
func (s *Session) Drain() []Event {
	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}
