package engine

import "fmt"

// SuppressionTicket is the pending auto-suppression of one fire. At most one
// is armed per session; a newer spawn replaces it.
type SuppressionTicket struct {
	FireID    int
	Remaining int // whole seconds

	carry float64
}

// armTicket installs a fresh countdown on fireID, discarding any previous one
// without resolving it.
func (s *Session) armTicket(fireID int) {
	if prev := s.ticket; prev != nil {
		s.log.Add(s.tick, prev.FireID, "ticket", "replaced",
			fmt.Sprintf("by F%d with %ds left", fireID, prev.Remaining), float64(prev.Remaining))
		s.emit(Event{Kind: EventTicketReplaced, FireID: prev.FireID, Remaining: prev.Remaining})
	}
	s.ticket = &SuppressionTicket{FireID: fireID, Remaining: s.cfg.SuppressionCountdown}
	s.log.Add(s.tick, fireID, "ticket", "armed", fmt.Sprintf("%ds", s.ticket.Remaining), float64(s.ticket.Remaining))
	s.emit(Event{Kind: EventTicketArmed, FireID: fireID, Remaining: s.ticket.Remaining})
}

// tickSuppression counts the armed ticket down once per whole elapsed second
// and auto-suppresses its fire when it reaches zero.
func (s *Session) tickSuppression(dt float64) {
	t := s.ticket
	if t == nil || dt <= 0 {
		return
	}
	t.carry += dt
	for t.carry >= 1 && s.ticket == t {
		t.carry--
		t.Remaining--
		if t.Remaining > 0 {
			continue
		}
		s.log.Add(s.tick, t.FireID, "ticket", "expired", "auto suppress", 0)
		s.emit(Event{Kind: EventTicketExpired, FireID: t.FireID})
		s.ticket = nil
		s.Suppress(t.FireID, TriggerAuto)
	}
}
