package engine

import (
	"fmt"
	"math"
)

// Condition is the visual damage band of the structure.
type Condition int

const (
	ConditionIntact   Condition = iota // damage < 25
	ConditionScorched                  // damage < 50
	ConditionBurning                   // damage < 75
	ConditionCritical
)

func (c Condition) String() string {
	switch c {
	case ConditionIntact:
		return "intact"
	case ConditionScorched:
		return "scorched"
	case ConditionBurning:
		return "burning"
	default:
		return "critical"
	}
}

func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Condition) UnmarshalText(b []byte) error {
	for _, cand := range []Condition{ConditionIntact, ConditionScorched, ConditionBurning, ConditionCritical} {
		if cand.String() == string(b) {
			*c = cand
			return nil
		}
	}
	return fmt.Errorf("unknown condition %q", b)
}

// ConditionFor maps damage to its band.
func ConditionFor(damage float64) Condition {
	switch {
	case damage < 25:
		return ConditionIntact
	case damage < 50:
		return ConditionScorched
	case damage < 75:
		return ConditionBurning
	default:
		return ConditionCritical
	}
}

// HealthFor returns 100 - floor(damage), never below 0.
func HealthFor(damage float64) int {
	h := 100 - int(math.Floor(damage))
	if h < 0 {
		return 0
	}
	return h
}

// FireView is the read-only projection of a fire.
type FireView struct {
	ID              int     `json:"id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Intensity       float64 `json:"intensity"`
	ClicksRemaining int     `json:"clicks_remaining"`
	ClicksRequired  int     `json:"clicks_required"`
}

// TicketView is the read-only projection of a suppression ticket.
type TicketView struct {
	FireID    int `json:"fire_id"`
	Remaining int `json:"remaining"`
}

// Snapshot is a JSON-serialisable view of a session for rendering.
type Snapshot struct {
	SessionID    string      `json:"session_id"`
	Level        Level       `json:"level"`
	State        State       `json:"state"`
	Damage       float64     `json:"damage"`
	Health       int         `json:"health"`
	Condition    Condition   `json:"condition"`
	Score        int         `json:"score"`
	Extinguished int         `json:"extinguished"`
	WinTarget    int         `json:"win_target"`
	MaxIntensity float64     `json:"max_intensity"`
	Fires        []FireView  `json:"fires"`
	Ticket       *TicketView `json:"ticket"`
	Elapsed      float64     `json:"elapsed"`
	Tick         int         `json:"tick"`
}

// Smoking reports whether the structure should be drawn smoking.
func (sn Snapshot) Smoking() bool { return sn.Damage > 40 }

// Danger reports whether the danger vignette should be shown.
func (sn Snapshot) Danger() bool { return sn.Damage > 70 }

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	sn := Snapshot{
		SessionID:    s.ID.String(),
		Level:        s.cfg.Level,
		State:        s.state,
		Damage:       s.damage,
		Health:       HealthFor(s.damage),
		Condition:    ConditionFor(s.damage),
		Score:        s.score,
		Extinguished: s.extinguished,
		WinTarget:    s.cfg.WinTarget,
		MaxIntensity: s.cfg.MaxIntensity,
		Fires:        make([]FireView, 0, len(s.fires)),
		Elapsed:      s.elapsed,
		Tick:         s.tick,
	}
	for _, f := range s.fires {
		sn.Fires = append(sn.Fires, FireView{
			ID:              f.ID,
			X:               f.X,
			Y:               f.Y,
			Intensity:       f.Intensity,
			ClicksRemaining: f.ClicksRemaining,
			ClicksRequired:  f.ClicksRequired,
		})
	}
	if s.ticket != nil {
		sn.Ticket = &TicketView{FireID: s.ticket.FireID, Remaining: s.ticket.Remaining}
	}
	return sn
}
