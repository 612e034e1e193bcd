package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

const reportTailEntries = 80

// sessionReport builds the plain-text report copied by the C key.
func sessionReport(sn engine.Snapshot, el *engine.EventLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- FireSense session report ---\n")
	fmt.Fprintf(&b, "session=%s level=%s state=%s elapsed=%.1fs ticks=%d\n",
		sn.SessionID, sn.Level, sn.State, sn.Elapsed, sn.Tick)
	fmt.Fprintf(&b, "health=%d%% (%s) damage=%.2f score=%d extinguished=%d/%d\n",
		sn.Health, sn.Condition, sn.Damage, sn.Score, sn.Extinguished, sn.WinTarget)

	r := engine.DetermineOutcome(sn)
	fmt.Fprintf(&b, "outcome=%s (%s)\n", r.Outcome, r.Description)

	if len(sn.Fires) > 0 {
		b.WriteString("\nactive fires:\n")
		for _, f := range sn.Fires {
			fmt.Fprintf(&b, "  #%d at (%.1f, %.1f) intensity=%.1f clicks=%d/%d\n",
				f.ID, f.X, f.Y, f.Intensity, f.ClicksRemaining, f.ClicksRequired)
		}
	}
	if sn.Ticket != nil {
		fmt.Fprintf(&b, "ticket: fire #%d in %ds\n", sn.Ticket.FireID, sn.Ticket.Remaining)
	}

	if el != nil {
		fmt.Fprintf(&b, "\nlast %d of %d log entries:\n", min(reportTailEntries, el.Len()), el.Len())
		b.WriteString(el.FormatTail(reportTailEntries))
	}
	return b.String()
}

// copyReport puts the current session report on the system clipboard.
func (g *Game) copyReport() {
	if !g.engine.Running() {
		return
	}
	report := sessionReport(g.engine.Snapshot(), g.engine.Log())
	if err := clipboard.WriteAll(report); err != nil {
		g.logger.Warn("copy report", "err", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied")
}
