package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 60
	feedLineHeight = 14
)

// FeedEntry is one line in the event feed.
type FeedEntry struct {
	Elapsed float64
	Kind    engine.EventKind
	Message string
}

// EventFeed is a ring buffer of recent engine events rendered beside the scene.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an event, overwriting the oldest entry once full.
func (ef *EventFeed) Add(ev engine.Event) {
	ef.entries[ef.head] = FeedEntry{Elapsed: ev.Elapsed, Kind: ev.Kind, Message: describeEvent(ev)}
	ef.head = (ef.head + 1) % feedMaxEntries
	if ef.count < feedMaxEntries {
		ef.count++
	}
}

func (ef *EventFeed) Reset() {
	ef.head = 0
	ef.count = 0
}

func (ef *EventFeed) Len() int { return ef.count }

// Recent returns entries oldest first.
func (ef *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, ef.count)
	for i := 0; i < ef.count; i++ {
		idx := (ef.head - ef.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = ef.entries[idx]
	}
	return result
}

func describeEvent(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventFireSpawned:
		return fmt.Sprintf("fire #%d at %.0f,%.0f", ev.FireID, ev.X, ev.Y)
	case engine.EventFireHit:
		return fmt.Sprintf("hit #%d, %d left", ev.FireID, ev.Remaining)
	case engine.EventFireExtinguished:
		return fmt.Sprintf("out #%d +%d", ev.FireID, ev.Points)
	case engine.EventFireSuppressed:
		return fmt.Sprintf("suppressed #%d (%s) +%d", ev.FireID, ev.Trigger, ev.Points)
	case engine.EventTicketArmed:
		return fmt.Sprintf("system armed on #%d", ev.FireID)
	case engine.EventTicketReplaced:
		return fmt.Sprintf("system dropped #%d", ev.FireID)
	case engine.EventTicketExpired:
		return fmt.Sprintf("auto-suppress #%d", ev.FireID)
	case engine.EventWon:
		return fmt.Sprintf("WON with %d", ev.Score)
	case engine.EventLost:
		return "vehicle lost"
	}
	return ev.Kind.String()
}

func feedColor(kind engine.EventKind) color.RGBA {
	switch kind {
	case engine.EventFireSpawned:
		return color.RGBA{R: 230, G: 100, B: 30, A: 255}
	case engine.EventFireExtinguished, engine.EventFireSuppressed, engine.EventWon:
		return color.RGBA{R: 80, G: 200, B: 110, A: 255}
	case engine.EventTicketArmed, engine.EventTicketReplaced, engine.EventTicketExpired:
		return color.RGBA{R: 70, G: 140, B: 230, A: 255}
	case engine.EventLost:
		return color.RGBA{R: 230, G: 50, B: 50, A: 255}
	}
	return color.RGBA{R: 150, G: 150, B: 150, A: 255}
}

// Draw renders the feed panel on the right side of the window.
func (ef *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 14, G: 10, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 90, G: 50, B: 40, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 40, G: 20, B: 16, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := ef.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 40, G: 28, B: 24, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5.1fs %s", e.Elapsed, e.Message), panelX+12, y-1)
		y += feedLineHeight
	}
}
